package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/ratehistory"
	"github.com/vfg2006/exchange-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/exchange-analytics-api/pkg/log"
	"github.com/vfg2006/exchange-analytics-api/pkg/middleware"
)

// GetRateHistories retorna a trilha de auditoria de alterações de taxa de um
// escritório no período informado
func GetRateHistories(service ratehistory.Lister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		officeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		periodToken := r.URL.Query().Get("period")
		if periodToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O parâmetro period é obrigatório", nil)
			return
		}

		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			if claims.UserRoleID == middleware.RoleOwner && (claims.OfficeID == nil || *claims.OfficeID != officeID) {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este escritório", nil)
				return
			}
		}

		entries, err := service.ListByOffice(r.Context(), officeID, periodToken)
		if err != nil {
			logger.WithFields(log.Fields{
				"office_id": officeID,
				"period":    periodToken,
				"error":     err.Error(),
			}).Error("rate-histories: falha ao listar histórico")

			writeAggregationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("rate-histories: falha ao enviar resposta")
		}
	})
}
