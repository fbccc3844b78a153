package ledger

import (
	"context"
	"encoding/json"

	"github.com/SilvStei/PhoneUseCase/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// Store is the slice of the chaincode stub the ledger needs.
// shim.ChaincodeStubInterface satisfies it.
type Store interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
}

// EventSink is implemented by stores that can publish chaincode events.
type EventSink interface {
	SetEvent(name string, payload []byte) error
}

// Ledger is the asset lifecycle service for a single invocation. It holds no
// state of its own: every operation reads the world state before mutating it.
type Ledger struct {
	store  Store
	events EventSink
}

func New(store Store) *Ledger {
	l := &Ledger{store: store}
	if sink, ok := store.(EventSink); ok {
		l.events = sink
	}
	return l
}

func (l *Ledger) getState(ctx context.Context, key string) ([]byte, error) {
	data, err := l.store.GetState(key)
	if err != nil {
		return nil, i18n.NewError(ctx, msgs.MsgStateReadFailed, key, err)
	}
	return data, nil
}

// getRecord returns false without error when nothing is stored under key.
func (l *Ledger) getRecord(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := l.getState(ctx, key)
	if err != nil || len(data) == 0 {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, i18n.NewError(ctx, msgs.MsgRecordInvalid, key, err)
	}
	return true, nil
}

func (l *Ledger) putRecord(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgRecordInvalid, key, err)
	}
	if err := l.store.PutState(key, data); err != nil {
		return i18n.NewError(ctx, msgs.MsgStateWriteFailed, key, err)
	}
	log.L(ctx).Debugf("Wrote %s (%d bytes)", key, len(data))
	return nil
}

func (l *Ledger) deleteRecord(ctx context.Context, key string) error {
	if err := l.store.DelState(key); err != nil {
		return i18n.NewError(ctx, msgs.MsgStateDeleteFailed, key, err)
	}
	log.L(ctx).Debugf("Deleted %s", key)
	return nil
}

func (l *Ledger) emit(ctx context.Context, phone *Phone, operation string) error {
	if l.events == nil {
		return nil
	}
	payload, err := json.Marshal(&LifecycleEvent{PhoneID: phone.ID, Operation: operation, Status: phone.Status})
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgEventFailed, lifecycleEventName, err)
	}
	if err := l.events.SetEvent(lifecycleEventName, payload); err != nil {
		return i18n.NewError(ctx, msgs.MsgEventFailed, lifecycleEventName, err)
	}
	return nil
}

// ItemExists reports whether a non-empty record is stored under id.
func (l *Ledger) ItemExists(ctx context.Context, id string) (bool, error) {
	data, err := l.getState(ctx, id)
	if err != nil {
		return false, err
	}
	return len(data) > 0, nil
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

func without(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
