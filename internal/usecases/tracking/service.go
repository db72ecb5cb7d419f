// Package tracking registra os eventos de interação capturados no site
// público: visualização de perfil, clique em telefone e clique no GPS.
package tracking

import (
	"context"
	"errors"

	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/aggregating"
)

var ErrInvalidPhoneType = errors.New("tipo de telefone inválido")

type Tracker interface {
	RecordProfileView(ctx context.Context, officeID string, actorID *string) (*domain.InteractionEvent, error)
	RecordPhoneCall(ctx context.Context, officeID string, actorID *string, phoneNumber string, phoneType domain.PhoneType) (*domain.InteractionEvent, error)
	RecordGpsClick(ctx context.Context, officeID string, actorID *string) (*domain.InteractionEvent, error)
}

type Service struct {
	officeRepo repository.OfficeRepository
	eventStore repository.EventStore
}

func NewService(officeRepo repository.OfficeRepository, eventStore repository.EventStore) Tracker {
	return &Service{
		officeRepo: officeRepo,
		eventStore: eventStore,
	}
}

func (s *Service) RecordProfileView(ctx context.Context, officeID string, actorID *string) (*domain.InteractionEvent, error) {
	return s.record(ctx, domain.EventProfileView, &domain.InteractionEvent{
		OfficeID: officeID,
		ActorID:  actorID,
	})
}

func (s *Service) RecordPhoneCall(ctx context.Context, officeID string, actorID *string, phoneNumber string, phoneType domain.PhoneType) (*domain.InteractionEvent, error) {
	if !domain.ValidPhoneType(phoneType) {
		return nil, ErrInvalidPhoneType
	}

	return s.record(ctx, domain.EventPhoneCall, &domain.InteractionEvent{
		OfficeID:    officeID,
		ActorID:     actorID,
		PhoneNumber: &phoneNumber,
		PhoneType:   &phoneType,
	})
}

func (s *Service) RecordGpsClick(ctx context.Context, officeID string, actorID *string) (*domain.InteractionEvent, error) {
	return s.record(ctx, domain.EventGpsClick, &domain.InteractionEvent{
		OfficeID: officeID,
		ActorID:  actorID,
	})
}

func (s *Service) record(ctx context.Context, kind domain.EventKind, event *domain.InteractionEvent) (*domain.InteractionEvent, error) {
	office, err := s.officeRepo.GetByID(ctx, event.OfficeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, aggregating.ErrOfficeNotFound
	}

	if err := s.eventStore.Append(ctx, kind, event); err != nil {
		return nil, err
	}

	return event, nil
}
