package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/period"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/dashboard"
	"github.com/vfg2006/exchange-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/exchange-analytics-api/pkg/log"
	"github.com/vfg2006/exchange-analytics-api/pkg/middleware"
)

// GetOfficeStats retorna as métricas de engajamento de um escritório no
// período informado, com comparação ao período anterior
func GetOfficeStats(service dashboard.StatsComposer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		officeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		periodToken := r.URL.Query().Get("period")
		if periodToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O parâmetro period é obrigatório", nil)
			return
		}

		// Donos de escritório só enxergam o próprio dashboard
		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			if claims.UserRoleID == middleware.RoleOwner && (claims.OfficeID == nil || *claims.OfficeID != officeID) {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este escritório", nil)
				return
			}
		}

		stats, err := service.Compose(r.Context(), officeID, periodToken)
		if err != nil {
			logger.WithFields(log.Fields{
				"office_id": officeID,
				"period":    periodToken,
				"error":     err.Error(),
			}).Error("stats: falha ao compor métricas do escritório")

			writeAggregationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("stats: falha ao enviar resposta")
		}
	})
}

// GetOfficesStats retorna as contagens por métrica de vários escritórios de uma
// vez, para as tabelas administrativas
func GetOfficesStats(service dashboard.StatsComposer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periodToken := r.URL.Query().Get("period")
		if periodToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O parâmetro period é obrigatório", nil)
			return
		}

		officeIDs := parseOfficeIDs(r.URL.Query().Get("office_ids"))

		stats, err := service.ComposeMany(r.Context(), officeIDs, periodToken)
		if err != nil {
			logger.WithFields(log.Fields{
				"offices": len(officeIDs),
				"period":  periodToken,
				"error":   err.Error(),
			}).Error("stats: falha ao compor métricas em lote")

			writeAggregationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("stats: falha ao enviar resposta")
		}
	})
}

func parseOfficeIDs(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// writeAggregationError traduz a taxonomia de erros da agregação para os
// códigos da API
func writeAggregationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, period.ErrInvalidPeriodToken):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	case errors.Is(err, aggregating.ErrOfficeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrOfficeNotFound, "Escritório não encontrado", nil)
	case errors.Is(err, aggregating.ErrTimeout):
		apiErrors.WriteError(w, apiErrors.ErrQueryTimeout, "A consulta excedeu o tempo limite", nil)
	case errors.Is(err, aggregating.ErrStorageUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrStorageUnavailable, "Armazenamento de eventos indisponível", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
	}
}
