// Package aggregating implementa as contagens de eventos com comparação ao
// período anterior, para um escritório ou para vários em lote.
package aggregating

import (
	"context"
	"time"

	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/period"
	"github.com/vfg2006/exchange-analytics-api/pkg/utils"
)

// Aggregator agrega eventos por intervalo de tempo. Count atende um escritório;
// CountMany atende tabelas administrativas com muitos escritórios em uma única
// query agrupada, nunca uma query por escritório.
type Aggregator interface {
	Count(ctx context.Context, kind domain.EventKind, officeID string, window period.Window) (*domain.AggregateResult, error)
	CountMany(ctx context.Context, kind domain.EventKind, officeIDs []string, start, end time.Time) (map[string]int64, error)
}

type Service struct {
	eventStore repository.EventStore
}

func NewService(eventStore repository.EventStore) Aggregator {
	return &Service{
		eventStore: eventStore,
	}
}

// Count conta os eventos de um escritório na janela atual e na anterior e
// compõe o resultado de variação. A existência do escritório é resolvida pelo
// chamador uma única vez, não revalidada aqui a cada métrica.
func (s *Service) Count(ctx context.Context, kind domain.EventKind, officeID string, window period.Window) (*domain.AggregateResult, error) {
	currentCount, err := s.eventStore.CountByOffice(ctx, kind, officeID, window.CurrentStart, window.CurrentEnd)
	if err != nil {
		return nil, mapStorageError(err)
	}

	var previousCount int64
	if !window.AllHistory() {
		previousCount, err = s.eventStore.CountByOffice(ctx, kind, officeID, window.PreviousStart, window.PreviousEnd)
		if err != nil {
			return nil, mapStorageError(err)
		}
	}

	return &domain.AggregateResult{
		Metric:           kind,
		CurrentCount:     currentCount,
		PreviousCount:    previousCount,
		AbsoluteChange:   currentCount - previousCount,
		PercentageChange: percentageChange(currentCount, previousCount, window.AllHistory()),
	}, nil
}

// CountMany conta os eventos de vários escritórios no intervalo [start, end)
// em uma única query agrupada. Escritórios sem eventos ficam ausentes do mapa:
// chave ausente significa contagem zero, nunca erro. Lista vazia retorna mapa
// vazio sem consultar o armazenamento.
func (s *Service) CountMany(ctx context.Context, kind domain.EventKind, officeIDs []string, start, end time.Time) (map[string]int64, error) {
	if len(officeIDs) == 0 {
		return map[string]int64{}, nil
	}

	counts, err := s.eventStore.CountGroupedByOffice(ctx, kind, officeIDs, start, end)
	if err != nil {
		return nil, mapStorageError(err)
	}

	return counts, nil
}

// percentageChange aplica a política de base zero: sem comparação possível em
// ALL_HISTORY (nil); período anterior zerado vale 100 quando houve atividade
// nova e 0 quando ambos são zero; caso contrário a variação arredondada.
func percentageChange(current, previous int64, allHistory bool) *int64 {
	if allHistory {
		return nil
	}

	var change int64
	switch {
	case previous == 0 && current > 0:
		change = 100
	case previous == 0:
		change = 0
	default:
		change = utils.RoundPercentage(float64(current-previous) / float64(previous) * 100)
	}

	return &change
}
