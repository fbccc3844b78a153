package ledger

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/SilvStei/PhoneUseCase/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// Handler executes one operation. A nil result produces an empty payload.
type Handler func(ctx context.Context, l *Ledger, args []string) (interface{}, error)

type Operation struct {
	Args    []string
	Handler Handler
}

func register(role Role) Handler {
	return func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return l.RegisterParticipant(ctx, role, args[0], args[1])
	}
}

func parsePrice(ctx context.Context, s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !validPrice(price) {
		return 0, i18n.NewError(ctx, msgs.MsgInvalidPrice, s)
	}
	return price, nil
}

var operations = map[string]Operation{
	"instantiate": {nil, func(ctx context.Context, l *Ledger, _ []string) (interface{}, error) {
		return nil, l.Instantiate(ctx)
	}},
	"registerManufacturer": {[]string{"id", "companyName"}, register(RoleManufacturer)},
	"registerRetailer":     {[]string{"id", "companyName"}, register(RoleRetailer)},
	"registerCarrier":      {[]string{"id", "companyName"}, register(RoleCarrier)},
	"readParticipant": {[]string{"id"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return l.ReadParticipant(ctx, args[0])
	}},
	"listParticipants": {[]string{"role"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		role, err := ParseRole(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return l.ListParticipants(ctx, role)
	}},
	"itemExists": {[]string{"id"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return l.ItemExists(ctx, args[0])
	}},
	"createPhone": {[]string{"id", "manufacturerId", "model", "price"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		price, err := parsePrice(ctx, args[3])
		if err != nil {
			return nil, err
		}
		return l.CreatePhone(ctx, args[0], args[1], args[2], price)
	}},
	"readItem": {[]string{"id"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return l.ReadPhone(ctx, args[0])
	}},
	"updatePhone": {[]string{"id", "model", "price"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		price, err := parsePrice(ctx, args[2])
		if err != nil {
			return nil, err
		}
		return l.UpdatePhone(ctx, args[0], args[1], price)
	}},
	"shipPhone": {[]string{"id"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return l.ShipPhone(ctx, args[0])
	}},
	"logPhone": {[]string{"id", "retailerId"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return l.LogPhone(ctx, args[0], args[1])
	}},
	"sellPhone": {[]string{"id", "carrierId", "customerId"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return l.SellPhone(ctx, args[0], args[1], args[2])
	}},
	"returnPhone": {[]string{"id"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return l.ReturnPhone(ctx, args[0])
	}},
	"deletePhone": {[]string{"id"}, func(ctx context.Context, l *Ledger, args []string) (interface{}, error) {
		return nil, l.DeletePhone(ctx, args[0])
	}},
}

// Operations returns the names of every dispatchable operation, sorted.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named operation and returns its JSON-encoded result.
func (l *Ledger) Dispatch(ctx context.Context, function string, args []string) ([]byte, error) {
	op, ok := operations[function]
	if !ok {
		return nil, i18n.NewError(ctx, msgs.MsgUnknownFunction, function)
	}
	if len(args) != len(op.Args) {
		return nil, i18n.NewError(ctx, msgs.MsgWrongArgumentCount, function, len(op.Args), len(args))
	}
	result, err := op.Handler(ctx, l, args)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, i18n.NewError(ctx, msgs.MsgResultMarshalError, function, err)
	}
	return payload, nil
}
