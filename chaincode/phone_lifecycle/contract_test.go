package main

import (
	"encoding/json"
	"testing"

	"github.com/SilvStei/PhoneUseCase/internal/config"
	"github.com/SilvStei/PhoneUseCase/internal/ledger"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*contractapi.TransactionContext, *shimtest.MockStub) {
	stub := shimtest.NewMockStub("phone", nil)
	stub.MockTransactionStart("tx1")
	ctx := &contractapi.TransactionContext{}
	ctx.SetStub(stub)
	return ctx, stub
}

func TestContractScenario(t *testing.T) {
	ctx, stub := newTestContext(t)
	pc := newPhoneContract()

	require.NoError(t, pc.Instantiate(ctx))
	_, err := pc.RegisterManufacturer(ctx, "M1", "Acme")
	require.NoError(t, err)

	exists, err := pc.ItemExists(ctx, "P1")
	require.NoError(t, err)
	assert.False(t, exists)

	phone, err := pc.CreatePhone(ctx, "P1", "M1", "ModelX", 500)
	require.NoError(t, err)
	assert.Equal(t, "Created", phone.Status.Text)
	assert.Equal(t, "M1", phone.Manufacturer)

	phone, err = pc.ShipPhone(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Shipped", phone.Status.Text)

	_, err = pc.RegisterRetailer(ctx, "R1", "ShopCo")
	require.NoError(t, err)
	phone, err = pc.LogPhone(ctx, "P1", "R1")
	require.NoError(t, err)
	assert.Equal(t, "Delivered", phone.Status.Text)
	assert.Equal(t, "R1", phone.Retailer)
	retailer, err := pc.ReadParticipant(ctx, "R1")
	require.NoError(t, err)
	assert.Contains(t, retailer.Devices, "P1")

	_, err = pc.RegisterCarrier(ctx, "C1", "TeleCo")
	require.NoError(t, err)
	phone, err = pc.SellPhone(ctx, "P1", "C1", "Cust1")
	require.NoError(t, err)
	assert.Equal(t, "Sold", phone.Status.Text)
	assert.Equal(t, "C1", phone.Carrier)
	assert.Equal(t, "Cust1", phone.Customer)

	phone, err = pc.ReturnPhone(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Returned", phone.Status.Text)

	read, err := pc.ReadItem(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, phone, read)

	carriers, err := pc.ListParticipants(ctx, "Carrier")
	require.NoError(t, err)
	require.Len(t, carriers, 1)
	assert.Equal(t, []string{"P1"}, carriers[0].Devices)

	require.NoError(t, pc.DeletePhone(ctx, "P1"))
	assert.Nil(t, stub.State["P1"])
}

func TestContractErrors(t *testing.T) {
	ctx, _ := newTestContext(t)
	pc := newPhoneContract()

	_, err := pc.RegisterCarrier(ctx, "C1", "TeleCo")
	assert.Regexp(t, "PH010201", err)

	require.NoError(t, pc.Instantiate(ctx))
	_, err = pc.ListParticipants(ctx, "Customer")
	assert.Regexp(t, "PH010004", err)

	_, err = pc.ReadItem(ctx, "P1")
	assert.Regexp(t, "PH010301", err)

	_, err = pc.UpdatePhone(ctx, "P1", "ModelX", 1)
	assert.Regexp(t, "PH010301", err)

	assert.Regexp(t, "PH010301", pc.DeletePhone(ctx, "P1"))
}

func TestContractChaincodeRouting(t *testing.T) {
	cc, err := newChaincode(&config.Config{API: config.APIContract})
	require.NoError(t, err)
	stub := shimtest.NewMockStub("phone", cc)

	invoke := func(txID string, args ...string) ([]byte, string) {
		raw := make([][]byte, len(args))
		for i, a := range args {
			raw[i] = []byte(a)
		}
		res := stub.MockInvoke(txID, raw)
		return res.Payload, res.Message
	}

	_, msg := invoke("tx1", "PhoneContract:Instantiate")
	require.Empty(t, msg)
	_, msg = invoke("tx2", "PhoneContract:RegisterManufacturer", "M1", "Acme")
	require.Empty(t, msg)
	payload, msg := invoke("tx3", "PhoneContract:CreatePhone", "P1", "M1", "ModelX", "500")
	require.Empty(t, msg)

	var phone ledger.Phone
	require.NoError(t, json.Unmarshal(payload, &phone))
	assert.Equal(t, float64(500), phone.Price)

	_, msg = invoke("tx4", "PhoneContract:SellPhone", "P1", "C1", "Cust1")
	assert.Regexp(t, "PH010303", msg)
}

func TestNewChaincodeShim(t *testing.T) {
	cc, err := newChaincode(&config.Config{API: config.APIShim})
	require.NoError(t, err)
	assert.IsType(t, &ledger.Chaincode{}, cc)

	stub := shimtest.NewMockStub("phone", cc)
	res := stub.MockInit("tx0", nil)
	assert.Equal(t, int32(shim.OK), res.Status)
}
