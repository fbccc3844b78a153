package main

import (
	"context"

	"github.com/SilvStei/PhoneUseCase/internal/ledger"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// PhoneContract exposes the phone lifecycle as typed contract API transactions.
type PhoneContract struct {
	contractapi.Contract
}

func newPhoneContract() *PhoneContract {
	pc := &PhoneContract{}
	pc.Name = "PhoneContract"
	pc.Info.Title = "Phone lifecycle"
	pc.Info.Version = "1.0.0"
	return pc
}

func open(ctx contractapi.TransactionContextInterface, fn string) (context.Context, *ledger.Ledger) {
	stub := ctx.GetStub()
	c := log.WithLogField(context.Background(), "txid", stub.GetTxID())
	return log.WithLogField(c, "fn", fn), ledger.New(stub)
}

// Instantiate initializes the Manufacturers, Retailers and Carriers indexes.
func (pc *PhoneContract) Instantiate(ctx contractapi.TransactionContextInterface) error {
	c, l := open(ctx, "Instantiate")
	return l.Instantiate(c)
}

func (pc *PhoneContract) RegisterManufacturer(ctx contractapi.TransactionContextInterface, id, companyName string) (*ledger.Participant, error) {
	c, l := open(ctx, "RegisterManufacturer")
	return l.RegisterParticipant(c, ledger.RoleManufacturer, id, companyName)
}

func (pc *PhoneContract) RegisterRetailer(ctx contractapi.TransactionContextInterface, id, companyName string) (*ledger.Participant, error) {
	c, l := open(ctx, "RegisterRetailer")
	return l.RegisterParticipant(c, ledger.RoleRetailer, id, companyName)
}

func (pc *PhoneContract) RegisterCarrier(ctx contractapi.TransactionContextInterface, id, companyName string) (*ledger.Participant, error) {
	c, l := open(ctx, "RegisterCarrier")
	return l.RegisterParticipant(c, ledger.RoleCarrier, id, companyName)
}

func (pc *PhoneContract) ReadParticipant(ctx contractapi.TransactionContextInterface, id string) (*ledger.Participant, error) {
	c, l := open(ctx, "ReadParticipant")
	return l.ReadParticipant(c, id)
}

// ListParticipants returns all participants of a role (Manufacturer, Retailer or Carrier).
func (pc *PhoneContract) ListParticipants(ctx contractapi.TransactionContextInterface, role string) ([]*ledger.Participant, error) {
	c, l := open(ctx, "ListParticipants")
	r, err := ledger.ParseRole(c, role)
	if err != nil {
		return nil, err
	}
	return l.ListParticipants(c, r)
}

func (pc *PhoneContract) ItemExists(ctx contractapi.TransactionContextInterface, id string) (bool, error) {
	c, l := open(ctx, "ItemExists")
	return l.ItemExists(c, id)
}

func (pc *PhoneContract) CreatePhone(ctx contractapi.TransactionContextInterface, id, manufacturerID, model string, price float64) (*ledger.Phone, error) {
	c, l := open(ctx, "CreatePhone")
	return l.CreatePhone(c, id, manufacturerID, model, price)
}

func (pc *PhoneContract) ReadItem(ctx contractapi.TransactionContextInterface, id string) (*ledger.Phone, error) {
	c, l := open(ctx, "ReadItem")
	return l.ReadPhone(c, id)
}

func (pc *PhoneContract) UpdatePhone(ctx contractapi.TransactionContextInterface, id, model string, price float64) (*ledger.Phone, error) {
	c, l := open(ctx, "UpdatePhone")
	return l.UpdatePhone(c, id, model, price)
}

func (pc *PhoneContract) ShipPhone(ctx contractapi.TransactionContextInterface, id string) (*ledger.Phone, error) {
	c, l := open(ctx, "ShipPhone")
	return l.ShipPhone(c, id)
}

func (pc *PhoneContract) LogPhone(ctx contractapi.TransactionContextInterface, id, retailerID string) (*ledger.Phone, error) {
	c, l := open(ctx, "LogPhone")
	return l.LogPhone(c, id, retailerID)
}

func (pc *PhoneContract) SellPhone(ctx contractapi.TransactionContextInterface, id, carrierID, customerID string) (*ledger.Phone, error) {
	c, l := open(ctx, "SellPhone")
	return l.SellPhone(c, id, carrierID, customerID)
}

func (pc *PhoneContract) ReturnPhone(ctx contractapi.TransactionContextInterface, id string) (*ledger.Phone, error) {
	c, l := open(ctx, "ReturnPhone")
	return l.ReturnPhone(c, id)
}

func (pc *PhoneContract) DeletePhone(ctx contractapi.TransactionContextInterface, id string) error {
	c, l := open(ctx, "DeletePhone")
	return l.DeletePhone(c, id)
}
