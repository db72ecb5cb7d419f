package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/exchange-analytics-api/internal/events"
	"github.com/vfg2006/exchange-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/exchange-analytics-api/pkg/log"
)

type rateMutationRequest struct {
	TargetCurrencyID string  `json:"target_currency_id"`
	BaseCurrencyID   string  `json:"base_currency_id"`
	OldBuyRate       float64 `json:"old_buy_rate"`
	OldSellRate      float64 `json:"old_sell_rate"`
	NewBuyRate       float64 `json:"new_buy_rate"`
	NewSellRate      float64 `json:"new_sell_rate"`
	IsActive         bool    `json:"is_active"`
}

// PublishRateMutation é o ponto de integração com o serviço de gestão de
// taxas: ele chama este endpoint depois do commit de uma alteração, e a
// notificação segue para os consumidores do barramento. A resposta é 202: a
// gravação do histórico acontece fora desta requisição.
func PublishRateMutation(publisher events.RatePublisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		officeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req rateMutationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.TargetCurrencyID == "" || req.BaseCurrencyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os campos target_currency_id e base_currency_id são obrigatórios", nil)
			return
		}

		publisher.PublishRateMutated(events.RateMutated{
			OfficeID:         officeID,
			TargetCurrencyID: req.TargetCurrencyID,
			BaseCurrencyID:   req.BaseCurrencyID,
			OldBuyRate:       req.OldBuyRate,
			OldSellRate:      req.OldSellRate,
			NewBuyRate:       req.NewBuyRate,
			NewSellRate:      req.NewSellRate,
			IsActive:         req.IsActive,
			OccurredAt:       time.Now(),
		})

		log.ForContext(r.Context()).WithFields(log.Fields{
			"office_id":          officeID,
			"target_currency_id": req.TargetCurrencyID,
			"base_currency_id":   req.BaseCurrencyID,
		}).Info("Alteração de taxa publicada no barramento")

		w.WriteHeader(http.StatusAccepted)
	})
}
