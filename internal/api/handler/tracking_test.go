package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/pkg/apiErrors"
)

// trackerStub registra as chamadas recebidas para que os testes possam
// verificar se o handler chegou a acionar o caso de uso
type trackerStub struct {
	calls   int
	actorID *string
	event   *domain.InteractionEvent
	err     error
}

func (s *trackerStub) RecordProfileView(_ context.Context, officeID string, actorID *string) (*domain.InteractionEvent, error) {
	s.calls++
	s.actorID = actorID
	if s.err != nil {
		return nil, s.err
	}
	if s.event != nil {
		return s.event, nil
	}
	return &domain.InteractionEvent{OfficeID: officeID, ActorID: actorID}, nil
}

func (s *trackerStub) RecordPhoneCall(_ context.Context, officeID string, actorID *string, phoneNumber string, phoneType domain.PhoneType) (*domain.InteractionEvent, error) {
	s.calls++
	s.actorID = actorID
	if s.err != nil {
		return nil, s.err
	}
	return &domain.InteractionEvent{OfficeID: officeID, ActorID: actorID, PhoneNumber: &phoneNumber, PhoneType: &phoneType}, nil
}

func (s *trackerStub) RecordGpsClick(_ context.Context, officeID string, actorID *string) (*domain.InteractionEvent, error) {
	s.calls++
	s.actorID = actorID
	if s.err != nil {
		return nil, s.err
	}
	return &domain.InteractionEvent{OfficeID: officeID, ActorID: actorID}, nil
}

func newTrackingRouter(stub *trackerStub) http.Handler {
	rt := httprouter.New()
	rt.Handler(http.MethodPost, "/v1/offices/:id/events/profile-view", TrackProfileView(stub))
	rt.Handler(http.MethodPost, "/v1/offices/:id/events/phone-call", TrackPhoneCall(stub))
	rt.Handler(http.MethodPost, "/v1/offices/:id/events/gps-click", TrackGpsClick(stub))
	return rt
}

func TestTrackEventMalformedBody(t *testing.T) {
	paths := []string{
		"/v1/offices/office-1/events/profile-view",
		"/v1/offices/office-1/events/phone-call",
		"/v1/offices/office-1/events/gps-click",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			stub := &trackerStub{}
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"actor_id":`))
			rec := httptest.NewRecorder()

			newTrackingRouter(stub).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
			assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
			assert.Zero(t, stub.calls, "JSON malformado não deveria chegar ao caso de uso")
		})
	}
}

func TestTrackProfileViewEmptyBodyIsAnonymous(t *testing.T) {
	stub := &trackerStub{}
	req := httptest.NewRequest(http.MethodPost, "/v1/offices/office-1/events/profile-view", nil)
	rec := httptest.NewRecorder()

	newTrackingRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, stub.calls)
	assert.Nil(t, stub.actorID)

	var event domain.InteractionEvent
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&event))
	assert.Equal(t, "office-1", event.OfficeID)
}

func TestTrackProfileViewWithActor(t *testing.T) {
	stub := &trackerStub{}
	req := httptest.NewRequest(http.MethodPost, "/v1/offices/office-1/events/profile-view", strings.NewReader(`{"actor_id": "user-7"}`))
	rec := httptest.NewRecorder()

	newTrackingRouter(stub).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.actorID)
	assert.Equal(t, "user-7", *stub.actorID)
}
