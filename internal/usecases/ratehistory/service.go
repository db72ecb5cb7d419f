package ratehistory

import (
	"context"
	"time"

	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/period"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/aggregating"
)

// Lister expõe a consulta do histórico de taxas de um escritório por período
type Lister interface {
	ListByOffice(ctx context.Context, officeID string, periodToken string) ([]*domain.RateHistoryEntry, error)
}

type Service struct {
	officeRepo      repository.OfficeRepository
	rateHistoryRepo repository.RateHistoryRepository
}

func NewService(officeRepo repository.OfficeRepository, rateHistoryRepo repository.RateHistoryRepository) *Service {
	return &Service{
		officeRepo:      officeRepo,
		rateHistoryRepo: rateHistoryRepo,
	}
}

func (s *Service) ListByOffice(ctx context.Context, officeID string, periodToken string) ([]*domain.RateHistoryEntry, error) {
	window, err := period.Resolve(periodToken, time.Now())
	if err != nil {
		return nil, err
	}

	office, err := s.officeRepo.GetByID(ctx, officeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, aggregating.ErrOfficeNotFound
	}

	return s.rateHistoryRepo.ListByOffice(ctx, officeID, window.CurrentStart, window.CurrentEnd)
}
