package ledger

import (
	"context"
	"math"

	"github.com/SilvStei/PhoneUseCase/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

func validPrice(price float64) bool {
	return price >= 0 && !math.IsNaN(price) && !math.IsInf(price, 0)
}

// CreatePhone registers a new phone built by manufacturerID. The manufacturer's
// device list is written before the phone itself.
func (l *Ledger) CreatePhone(ctx context.Context, id, manufacturerID, model string, price float64) (*Phone, error) {
	if id == "" {
		return nil, i18n.NewError(ctx, msgs.MsgParameterRequired, "phoneId")
	}
	if !validPrice(price) {
		return nil, i18n.NewError(ctx, msgs.MsgInvalidPrice, price)
	}
	exists, err := l.ItemExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, i18n.NewError(ctx, msgs.MsgItemAlreadyExists, id)
	}
	manufacturer, err := l.requireParticipant(ctx, manufacturerID, RoleManufacturer)
	if err != nil {
		return nil, err
	}

	phone := &Phone{
		DocType:      docTypePhone,
		ID:           id,
		Status:       NewStatus(StatusCreated),
		Price:        price,
		Manufacturer: manufacturerID,
		Model:        model,
	}
	if err := l.assignDevice(ctx, manufacturer, id); err != nil {
		return nil, err
	}
	if err := l.putRecord(ctx, id, phone); err != nil {
		return nil, err
	}
	if err := l.emit(ctx, phone, "create"); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Created phone %s (manufacturer=%s model=%s)", id, manufacturerID, model)
	return phone, nil
}

// ReadPhone returns the phone stored under id.
func (l *Ledger) ReadPhone(ctx context.Context, id string) (*Phone, error) {
	var phone Phone
	found, err := l.getRecord(ctx, id, &phone)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, i18n.NewError(ctx, msgs.MsgItemNotFound, id)
	}
	if phone.DocType != docTypePhone {
		return nil, i18n.NewError(ctx, msgs.MsgNotAPhone, id)
	}
	return &phone, nil
}

// UpdatePhone replaces the model and price of a phone that has not been returned.
func (l *Ledger) UpdatePhone(ctx context.Context, id, model string, price float64) (*Phone, error) {
	if !validPrice(price) {
		return nil, i18n.NewError(ctx, msgs.MsgInvalidPrice, price)
	}
	phone, err := l.ReadPhone(ctx, id)
	if err != nil {
		return nil, err
	}
	if phone.Status.Code == StatusReturned {
		return nil, i18n.NewError(ctx, msgs.MsgPhoneRetired, id, phone.Status)
	}
	phone.Model = model
	phone.Price = price
	if err := l.putRecord(ctx, id, phone); err != nil {
		return nil, err
	}
	if err := l.emit(ctx, phone, "update"); err != nil {
		return nil, err
	}
	return phone, nil
}

// DeletePhone removes a phone and drops it from the device lists of every
// participant it references.
func (l *Ledger) DeletePhone(ctx context.Context, id string) error {
	phone, err := l.ReadPhone(ctx, id)
	if err != nil {
		return err
	}
	for _, participantID := range []string{phone.Manufacturer, phone.Retailer, phone.Carrier} {
		if err := l.releaseDevice(ctx, participantID, id); err != nil {
			return err
		}
	}
	if err := l.deleteRecord(ctx, id); err != nil {
		return err
	}
	if err := l.emit(ctx, phone, "delete"); err != nil {
		return err
	}
	log.L(ctx).Infof("Deleted phone %s", id)
	return nil
}
