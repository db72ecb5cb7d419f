// Package dashboard orquestra as agregações de todas as métricas acompanhadas
// e monta as respostas consumidas pelo painel do dono e pelas tabelas
// administrativas.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/period"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/aggregating"
)

// metricKinds são as métricas do dashboard, sempre agregadas sobre a mesma
// janela para que as variações sejam comparáveis entre si em uma resposta
var metricKinds = []domain.EventKind{
	domain.EventProfileView,
	domain.EventPhoneCall,
	domain.EventGpsClick,
	domain.EventRateChange,
}

type StatsComposer interface {
	Compose(ctx context.Context, officeID string, periodToken string) (*domain.DashboardStats, error)
	ComposeMany(ctx context.Context, officeIDs []string, periodToken string) (map[string]*domain.OfficeMetricCounts, error)
}

type Service struct {
	officeRepo repository.OfficeRepository
	aggregator aggregating.Aggregator
	// bulkTimeout limita as agregações em lote; zero desabilita o limite
	bulkTimeout time.Duration
}

func NewService(officeRepo repository.OfficeRepository, aggregator aggregating.Aggregator, bulkTimeout time.Duration) StatsComposer {
	return &Service{
		officeRepo:  officeRepo,
		aggregator:  aggregator,
		bulkTimeout: bulkTimeout,
	}
}

// Compose resolve a janela do período uma única vez e agrega as quatro métricas
// do escritório sobre ela. A existência do escritório é validada aqui, uma vez,
// antes de qualquer agregação.
func (s *Service) Compose(ctx context.Context, officeID string, periodToken string) (*domain.DashboardStats, error) {
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

	results := make([]*domain.AggregateResult, len(metricKinds))
	errs := make([]error, len(metricKinds))

	wg := sync.WaitGroup{}
	for i, kind := range metricKinds {
		wg.Add(1)
		go func(i int, kind domain.EventKind) {
			defer wg.Done()
			results[i], errs[i] = s.aggregator.Count(ctx, kind, officeID, window)
		}(i, kind)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &domain.DashboardStats{
		OfficeID:     officeID,
		Period:       string(window.Token),
		ProfileViews: results[0],
		PhoneCalls:   results[1],
		GpsClicks:    results[2],
		RateAlerts:   results[3],
	}, nil
}

// ComposeMany agrega as métricas de vários escritórios: uma query agrupada por
// métrica (quatro no total), nunca escritórios × métricas. Escritórios sem
// eventos entram no resultado com contagens zeradas.
func (s *Service) ComposeMany(ctx context.Context, officeIDs []string, periodToken string) (map[string]*domain.OfficeMetricCounts, error) {
	window, err := period.Resolve(periodToken, time.Now())
	if err != nil {
		return nil, err
	}

	if s.bulkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.bulkTimeout)
		defer cancel()
	}

	countsByKind := make([]map[string]int64, len(metricKinds))
	errs := make([]error, len(metricKinds))

	wg := sync.WaitGroup{}
	for i, kind := range metricKinds {
		wg.Add(1)
		go func(i int, kind domain.EventKind) {
			defer wg.Done()
			countsByKind[i], errs[i] = s.aggregator.CountMany(ctx, kind, officeIDs, window.CurrentStart, window.CurrentEnd)
		}(i, kind)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	stats := make(map[string]*domain.OfficeMetricCounts, len(officeIDs))
	for _, officeID := range officeIDs {
		stats[officeID] = &domain.OfficeMetricCounts{
			OfficeID:     officeID,
			ProfileViews: countsByKind[0][officeID],
			PhoneCalls:   countsByKind[1][officeID],
			GpsClicks:    countsByKind[2][officeID],
			RateAlerts:   countsByKind[3][officeID],
		}
	}

	return stats, nil
}
