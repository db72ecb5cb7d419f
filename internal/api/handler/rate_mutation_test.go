package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/exchange-analytics-api/internal/events"
	"github.com/vfg2006/exchange-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/exchange-analytics-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func newRateMutationRouter(publisher events.RatePublisher) http.Handler {
	rt := httprouter.New()
	rt.Handler(http.MethodPost, "/v1/offices/:id/rate-mutations", PublishRateMutation(publisher))
	return rt
}

func TestPublishRateMutation(t *testing.T) {
	bus := events.NewBus()
	received := make(chan events.RateMutated, 1)
	bus.SubscribeRateMutated(func(notification events.RateMutated) {
		received <- notification
	})

	body := `{
		"target_currency_id": "USD",
		"base_currency_id": "BRL",
		"old_buy_rate": 5.10,
		"old_sell_rate": 5.30,
		"new_buy_rate": 5.15,
		"new_sell_rate": 5.35,
		"is_active": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/offices/office-1/rate-mutations", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRateMutationRouter(bus).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case notification := <-received:
		assert.Equal(t, "office-1", notification.OfficeID)
		assert.Equal(t, "USD", notification.TargetCurrencyID)
		assert.Equal(t, "BRL", notification.BaseCurrencyID)
		assert.Equal(t, 5.10, notification.OldBuyRate)
		assert.Equal(t, 5.30, notification.OldSellRate)
		assert.Equal(t, 5.15, notification.NewBuyRate)
		assert.Equal(t, 5.35, notification.NewSellRate)
		assert.True(t, notification.IsActive)
		assert.False(t, notification.OccurredAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("notificação não entregue ao consumidor")
	}
}

func TestPublishRateMutationMalformedBody(t *testing.T) {
	bus := events.NewBus()
	received := make(chan events.RateMutated, 1)
	bus.SubscribeRateMutated(func(notification events.RateMutated) {
		received <- notification
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/offices/office-1/rate-mutations", strings.NewReader(`{"target_currency_id":`))
	rec := httptest.NewRecorder()

	newRateMutationRouter(bus).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)

	select {
	case <-received:
		t.Fatal("requisição rejeitada não deveria publicar notificação")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPublishRateMutationMissingCurrencyIDs(t *testing.T) {
	bus := events.NewBus()

	body := `{"target_currency_id": "USD", "new_buy_rate": 5.15}`
	req := httptest.NewRequest(http.MethodPost, "/v1/offices/office-1/rate-mutations", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRateMutationRouter(bus).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}
