package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/exchange-analytics-api/pkg/apiErrors"
)

// GetOfficeRanking retorna o ranking dos escritórios por visualizações de perfil
func GetOfficeRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := service.GetOfficeRanking(r.Context())
		if err != nil {
			logrus.Error("Erro ao buscar ranking dos escritórios:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking dos escritórios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ranking); err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
