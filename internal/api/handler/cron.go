package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exchange-analytics-api/internal/scheduler"
	"github.com/vfg2006/exchange-analytics-api/pkg/apiErrors"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeOfficeRanking = "office-ranking"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	OfficeRankingService *scheduler.OfficeRankingService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeOfficeRanking:
			if services.OfficeRankingService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ranking de escritórios não disponível", nil)
				return
			}
			services.OfficeRankingService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: office-ranking", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.OfficeRankingService != nil {
			startedAt, completedAt := services.OfficeRankingService.LastSync()
			status[CronJobTypeOfficeRanking] = map[string]any{
				"running":           services.OfficeRankingService.IsSyncRunning(),
				"last_started_at":   startedAt,
				"last_completed_at": completedAt,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
