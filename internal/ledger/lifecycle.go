package ledger

import (
	"context"

	"github.com/SilvStei/PhoneUseCase/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// transition is one guarded step of the custody chain
// Created -> Shipped -> Delivered -> Sold -> Returned.
type transition struct {
	operation string
	from      int
	to        int
}

var (
	shipTransition    = transition{operation: "ship", from: StatusCreated, to: StatusShipped}
	deliverTransition = transition{operation: "deliver", from: StatusShipped, to: StatusDelivered}
	sellTransition    = transition{operation: "sell", from: StatusDelivered, to: StatusSold}
	returnTransition  = transition{operation: "return", from: StatusSold, to: StatusReturned}
)

// begin loads the phone and checks it is in the transition's source status.
func (l *Ledger) begin(ctx context.Context, t transition, id string) (*Phone, error) {
	phone, err := l.ReadPhone(ctx, id)
	if err != nil {
		return nil, err
	}
	if phone.Status.Code != t.from {
		return nil, i18n.NewError(ctx, msgs.MsgInvalidTransition, t.operation, id, phone.Status, NewStatus(t.from))
	}
	return phone, nil
}

// commit persists the phone in the transition's target status.
func (l *Ledger) commit(ctx context.Context, t transition, phone *Phone) (*Phone, error) {
	phone.Status = NewStatus(t.to)
	if err := l.putRecord(ctx, phone.ID, phone); err != nil {
		return nil, err
	}
	if err := l.emit(ctx, phone, t.operation); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Phone %s: %s -> %s", phone.ID, NewStatus(t.from), phone.Status)
	return phone, nil
}

func (l *Ledger) ShipPhone(ctx context.Context, id string) (*Phone, error) {
	phone, err := l.begin(ctx, shipTransition, id)
	if err != nil {
		return nil, err
	}
	return l.commit(ctx, shipTransition, phone)
}

// LogPhone records delivery of a shipped phone to a retailer.
func (l *Ledger) LogPhone(ctx context.Context, id, retailerID string) (*Phone, error) {
	phone, err := l.begin(ctx, deliverTransition, id)
	if err != nil {
		return nil, err
	}
	retailer, err := l.requireParticipant(ctx, retailerID, RoleRetailer)
	if err != nil {
		return nil, err
	}
	if err := l.assignDevice(ctx, retailer, id); err != nil {
		return nil, err
	}
	phone.Retailer = retailerID
	return l.commit(ctx, deliverTransition, phone)
}

// SellPhone records the sale of a delivered phone to a customer on a carrier.
func (l *Ledger) SellPhone(ctx context.Context, id, carrierID, customerID string) (*Phone, error) {
	phone, err := l.begin(ctx, sellTransition, id)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, i18n.NewError(ctx, msgs.MsgParameterRequired, "customerId")
	}
	carrier, err := l.requireParticipant(ctx, carrierID, RoleCarrier)
	if err != nil {
		return nil, err
	}
	if err := l.assignDevice(ctx, carrier, id); err != nil {
		return nil, err
	}
	phone.Carrier = carrierID
	phone.Customer = customerID
	return l.commit(ctx, sellTransition, phone)
}

// ReturnPhone moves a sold phone to the terminal Returned status.
func (l *Ledger) ReturnPhone(ctx context.Context, id string) (*Phone, error) {
	phone, err := l.begin(ctx, returnTransition, id)
	if err != nil {
		return nil, err
	}
	return l.commit(ctx, returnTransition, phone)
}
