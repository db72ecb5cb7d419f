package ratehistory

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/events"
	"github.com/vfg2006/exchange-analytics-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func TestHandlePersistsHistoryEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateHistoryRepo := mocks.NewMockRateHistoryRepository(ctrl)
	recorder := NewRecorder(mockRateHistoryRepo)

	var saved *domain.RateHistoryEntry
	mockRateHistoryRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, entry *domain.RateHistoryEntry) error {
			saved = entry
			return nil
		}).
		Times(1)

	recorder.Handle(events.RateMutated{
		OfficeID:         "office-1",
		TargetCurrencyID: "USD",
		BaseCurrencyID:   "BRL",
		OldBuyRate:       5.10,
		OldSellRate:      5.30,
		NewBuyRate:       5.15,
		NewSellRate:      5.35,
		IsActive:         true,
		OccurredAt:       time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
	})

	require.NotNil(t, saved)
	assert.Equal(t, "office-1", saved.OfficeID)
	assert.Equal(t, "USD", saved.TargetCurrencyID)
	assert.Equal(t, "BRL", saved.BaseCurrencyID)
	assert.Equal(t, 5.10, saved.OldBuyRate)
	assert.Equal(t, 5.30, saved.OldSellRate)
	assert.Equal(t, 5.15, saved.NewBuyRate)
	assert.Equal(t, 5.35, saved.NewSellRate)
	assert.True(t, saved.IsActive)
}

func TestHandleSaveErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateHistoryRepo := mocks.NewMockRateHistoryRepository(ctrl)
	recorder := NewRecorder(mockRateHistoryRepo)

	mockRateHistoryRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("banco fora do ar"))

	// A falha de gravação é logada e nunca propagada ao publicador
	assert.NotPanics(t, func() {
		recorder.Handle(events.RateMutated{OfficeID: "office-1"})
	})
}

func TestRegisterReceivesPublishedNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateHistoryRepo := mocks.NewMockRateHistoryRepository(ctrl)
	recorder := NewRecorder(mockRateHistoryRepo)

	bus := events.NewBus()
	recorder.Register(bus)

	wg := sync.WaitGroup{}
	wg.Add(1)
	mockRateHistoryRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, entry *domain.RateHistoryEntry) error {
			defer wg.Done()
			assert.Equal(t, "office-1", entry.OfficeID)
			return nil
		}).
		Times(1)

	bus.PublishRateMutated(events.RateMutated{OfficeID: "office-1"})

	wg.Wait()
}
