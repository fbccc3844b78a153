package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperations(t *testing.T) {
	assert.Equal(t, []string{
		"createPhone",
		"deletePhone",
		"instantiate",
		"itemExists",
		"listParticipants",
		"logPhone",
		"readItem",
		"readParticipant",
		"registerCarrier",
		"registerManufacturer",
		"registerRetailer",
		"returnPhone",
		"sellPhone",
		"shipPhone",
		"updatePhone",
	}, Operations())
}

func TestDispatchUnknownFunction(t *testing.T) {
	ctx, _, l := newTestLedger(t)
	_, err := l.Dispatch(ctx, "transferPhone", []string{"P1"})
	assert.Regexp(t, "PH010000.*transferPhone", err)
}

func TestDispatchWrongArgumentCount(t *testing.T) {
	ctx, _, l := newTestLedger(t)
	_, err := l.Dispatch(ctx, "createPhone", []string{"P1", "M1"})
	assert.Regexp(t, "PH010001.*createPhone.*4.*2", err)
}

func TestDispatchScenario(t *testing.T) {
	ctx, _, l := newTestLedger(t)
	call := func(fn string, args ...string) []byte {
		payload, err := l.Dispatch(ctx, fn, args)
		require.NoError(t, err, fn)
		return payload
	}

	call("registerManufacturer", "M1", "Acme")
	call("registerRetailer", "R1", "ShopCo")
	call("registerCarrier", "C1", "TeleCo")
	assert.Equal(t, "false", string(call("itemExists", "P1")))

	var phone Phone
	require.NoError(t, json.Unmarshal(call("createPhone", "P1", "M1", "ModelX", "500"), &phone))
	assert.Equal(t, float64(500), phone.Price)
	assert.Equal(t, "true", string(call("itemExists", "P1")))

	call("shipPhone", "P1")
	call("logPhone", "P1", "R1")
	call("sellPhone", "P1", "C1", "Cust1")
	require.NoError(t, json.Unmarshal(call("returnPhone", "P1"), &phone))
	assert.Equal(t, "Returned", phone.Status.Text)

	require.NoError(t, json.Unmarshal(call("readItem", "P1"), &phone))
	assert.Equal(t, "Cust1", phone.Customer)

	var p Participant
	require.NoError(t, json.Unmarshal(call("readParticipant", "R1"), &p))
	assert.Equal(t, []string{"P1"}, p.Devices)

	var carriers []*Participant
	require.NoError(t, json.Unmarshal(call("listParticipants", "carrier"), &carriers))
	require.Len(t, carriers, 1)
	assert.Equal(t, "TeleCo", carriers[0].CompanyName)

	assert.Empty(t, call("deletePhone", "P1"))
	assert.Equal(t, "false", string(call("itemExists", "P1")))
	assert.Empty(t, call("instantiate"))
}

func TestDispatchPriceParsing(t *testing.T) {
	ctx, _, l := newScenarioLedger(t)

	_, err := l.Dispatch(ctx, "createPhone", []string{"P2", "M1", "ModelX", "cheap"})
	assert.Regexp(t, "PH010003.*cheap", err)
	_, err = l.Dispatch(ctx, "createPhone", []string{"P2", "M1", "ModelX", "-3"})
	assert.Regexp(t, "PH010003", err)
	_, err = l.Dispatch(ctx, "updatePhone", []string{"P1", "ModelX", "NaN"})
	assert.Regexp(t, "PH010003", err)

	payload, err := l.Dispatch(ctx, "updatePhone", []string{"P1", "ModelZ", " 12.5 "})
	require.NoError(t, err)
	var phone Phone
	require.NoError(t, json.Unmarshal(payload, &phone))
	assert.Equal(t, 12.5, phone.Price)
	assert.Equal(t, "ModelZ", phone.Model)
}

func TestDispatchBadRole(t *testing.T) {
	ctx, _, l := newTestLedger(t)
	_, err := l.Dispatch(ctx, "listParticipants", []string{"Customers"})
	assert.Regexp(t, "PH010004", err)
}
