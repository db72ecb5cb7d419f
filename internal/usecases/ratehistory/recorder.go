// Package ratehistory mantém a trilha de auditoria de alterações de taxa.
// O gravador consome as notificações RateMutated publicadas após o commit da
// alteração; uma falha aqui é registrada e nunca propagada ao caminho que
// alterou a taxa.
package ratehistory

import (
	"context"
	"time"

	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/events"
	"github.com/vfg2006/exchange-analytics-api/pkg/log"
)

// persistTimeout limita a gravação de uma entrada de histórico; o publicador
// já seguiu em frente, então não há motivo para segurar a goroutine além disso
const persistTimeout = 10 * time.Second

type Recorder struct {
	rateHistoryRepo repository.RateHistoryRepository
}

func NewRecorder(rateHistoryRepo repository.RateHistoryRepository) *Recorder {
	return &Recorder{
		rateHistoryRepo: rateHistoryRepo,
	}
}

// Register inscreve o gravador no barramento de notificações
func (r *Recorder) Register(bus *events.Bus) {
	bus.SubscribeRateMutated(r.Handle)
}

// Handle persiste uma entrada de histórico para cada notificação recebida.
// Notificações duplicadas produzem entradas duplicadas: a entrega é "pelo
// menos uma vez" e a deduplicação, quando necessária, é feita na origem.
func (r *Recorder) Handle(notification events.RateMutated) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	entry := &domain.RateHistoryEntry{
		OfficeID:         notification.OfficeID,
		TargetCurrencyID: notification.TargetCurrencyID,
		BaseCurrencyID:   notification.BaseCurrencyID,
		OldBuyRate:       notification.OldBuyRate,
		OldSellRate:      notification.OldSellRate,
		NewBuyRate:       notification.NewBuyRate,
		NewSellRate:      notification.NewSellRate,
		IsActive:         notification.IsActive,
	}

	if err := r.rateHistoryRepo.Save(ctx, entry); err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"office_id":          notification.OfficeID,
			"target_currency_id": notification.TargetCurrencyID,
			"base_currency_id":   notification.BaseCurrencyID,
		}).Error("Erro ao gravar histórico de alteração de taxa")
		return
	}

	log.L.WithFields(log.Fields{
		"office_id": notification.OfficeID,
		"entry_id":  entry.ID,
	}).Debug("Histórico de alteração de taxa gravado")
}
