package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/tracking"
	"github.com/vfg2006/exchange-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/exchange-analytics-api/pkg/log"
)

type trackEventRequest struct {
	ActorID     *string `json:"actor_id"`
	PhoneNumber string  `json:"phone_number"`
	PhoneType   string  `json:"phone_type"`
}

// decodeTrackRequest aceita corpo vazio (os eventos podem ser anônimos e sem
// atributos extras), mas rejeita JSON malformado em vez de degradar
// silenciosamente para um evento anônimo
func decodeTrackRequest(r *http.Request) (trackEventRequest, error) {
	var req trackEventRequest
	if r.Body == nil {
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return trackEventRequest{}, err
	}

	return req, nil
}

func TrackProfileView(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		officeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		req, err := decodeTrackRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		event, err := service.RecordProfileView(r.Context(), officeID, req.ActorID)
		if err != nil {
			writeTrackingError(w, r, officeID, err)
			return
		}

		respondCreated(w, event)
	})
}

func TrackPhoneCall(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		officeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		req, err := decodeTrackRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.PhoneNumber == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo phone_number é obrigatório", nil)
			return
		}

		event, err := service.RecordPhoneCall(r.Context(), officeID, req.ActorID, req.PhoneNumber, domain.PhoneType(req.PhoneType))
		if err != nil {
			if errors.Is(err, tracking.ErrInvalidPhoneType) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de telefone inválido", nil)
				return
			}
			writeTrackingError(w, r, officeID, err)
			return
		}

		respondCreated(w, event)
	})
}

func TrackGpsClick(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		officeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		req, err := decodeTrackRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		event, err := service.RecordGpsClick(r.Context(), officeID, req.ActorID)
		if err != nil {
			writeTrackingError(w, r, officeID, err)
			return
		}

		respondCreated(w, event)
	})
}

func respondCreated(w http.ResponseWriter, event *domain.InteractionEvent) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(event)
}

func writeTrackingError(w http.ResponseWriter, r *http.Request, officeID string, err error) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"office_id": officeID,
		"error":     err.Error(),
	}).Error("tracking: falha ao registrar evento")

	if errors.Is(err, aggregating.ErrOfficeNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrOfficeNotFound, "Escritório não encontrado", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar evento", nil)
}
