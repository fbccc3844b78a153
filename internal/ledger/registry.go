package ledger

import (
	"context"
	"strings"

	"github.com/SilvStei/PhoneUseCase/internal/msgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
)

var participantNotFound = map[Role]i18n.ErrorMessageKey{
	RoleManufacturer: msgs.MsgManufacturerNotFound,
	RoleRetailer:     msgs.MsgRetailerNotFound,
	RoleCarrier:      msgs.MsgCarrierNotFound,
}

// Instantiate creates every missing registry index as an empty list.
// Existing indexes are left as they are.
func (l *Ledger) Instantiate(ctx context.Context) error {
	for _, role := range Roles {
		data, err := l.getState(ctx, role.IndexKey())
		if err != nil {
			return err
		}
		if len(data) > 0 {
			continue
		}
		if err := l.putRecord(ctx, role.IndexKey(), []string{}); err != nil {
			return err
		}
		log.L(ctx).Infof("Initialized registry index %s", role.IndexKey())
	}
	return nil
}

func ParseRole(ctx context.Context, s string) (Role, error) {
	for _, role := range Roles {
		if strings.EqualFold(s, string(role)) {
			return role, nil
		}
	}
	return "", i18n.NewError(ctx, msgs.MsgUnknownRole, s)
}

func (l *Ledger) readIndex(ctx context.Context, role Role) ([]string, error) {
	var ids []string
	found, err := l.getRecord(ctx, role.IndexKey(), &ids)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, i18n.NewError(ctx, msgs.MsgIndexNotInitialized, role.IndexKey())
	}
	return ids, nil
}

// RegisterParticipant stores a new participant with an empty device list and
// appends it to the index of its role. The index is checked before anything
// is written.
func (l *Ledger) RegisterParticipant(ctx context.Context, role Role, id, companyName string) (*Participant, error) {
	if !role.Valid() {
		return nil, i18n.NewError(ctx, msgs.MsgUnknownRole, role)
	}
	if id == "" {
		return nil, i18n.NewError(ctx, msgs.MsgParameterRequired, "id")
	}
	exists, err := l.ItemExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, i18n.NewError(ctx, msgs.MsgParticipantDuplicate, id)
	}
	index, err := l.readIndex(ctx, role)
	if err != nil {
		return nil, err
	}

	p := &Participant{
		DocType:     docTypeParticipant,
		ID:          id,
		CompanyName: companyName,
		Role:        role,
		Devices:     []string{},
	}
	if err := l.putRecord(ctx, id, p); err != nil {
		return nil, err
	}
	if err := l.putRecord(ctx, role.IndexKey(), appendUnique(index, id)); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Registered %s %s (%s)", role, id, companyName)
	return p, nil
}

func (l *Ledger) ReadParticipant(ctx context.Context, id string) (*Participant, error) {
	var p Participant
	found, err := l.getRecord(ctx, id, &p)
	if err != nil {
		return nil, err
	}
	if !found || p.DocType != docTypeParticipant {
		return nil, i18n.NewError(ctx, msgs.MsgParticipantNotFound, id)
	}
	return &p, nil
}

// ListParticipants returns the participants of a role in registration order.
func (l *Ledger) ListParticipants(ctx context.Context, role Role) ([]*Participant, error) {
	if !role.Valid() {
		return nil, i18n.NewError(ctx, msgs.MsgUnknownRole, role)
	}
	ids, err := l.readIndex(ctx, role)
	if err != nil {
		return nil, err
	}
	participants := make([]*Participant, 0, len(ids))
	for _, id := range ids {
		p, err := l.ReadParticipant(ctx, id)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// requireParticipant resolves id to a participant of the given role.
func (l *Ledger) requireParticipant(ctx context.Context, id string, role Role) (*Participant, error) {
	if id == "" {
		return nil, i18n.NewError(ctx, msgs.MsgParameterRequired, strings.ToLower(string(role))+"Id")
	}
	var p Participant
	found, err := l.getRecord(ctx, id, &p)
	if err != nil {
		return nil, err
	}
	if !found || p.DocType != docTypeParticipant {
		return nil, i18n.NewError(ctx, participantNotFound[role], id)
	}
	if p.Role != role {
		return nil, i18n.NewError(ctx, msgs.MsgWrongParticipantType, id, p.Role, role)
	}
	return &p, nil
}

// assignDevice adds a phone to a participant's device list and persists it.
func (l *Ledger) assignDevice(ctx context.Context, p *Participant, phoneID string) error {
	p.Devices = appendUnique(p.Devices, phoneID)
	return l.putRecord(ctx, p.ID, p)
}

// releaseDevice removes a phone from the device list of the participant with
// the given id. Missing participants are ignored.
func (l *Ledger) releaseDevice(ctx context.Context, participantID, phoneID string) error {
	if participantID == "" {
		return nil
	}
	var p Participant
	found, err := l.getRecord(ctx, participantID, &p)
	if err != nil {
		return err
	}
	if !found || p.DocType != docTypeParticipant {
		log.L(ctx).Warnf("Participant %s referenced by %s no longer exists", participantID, phoneID)
		return nil
	}
	p.Devices = without(p.Devices, phoneID)
	return l.putRecord(ctx, p.ID, &p)
}
