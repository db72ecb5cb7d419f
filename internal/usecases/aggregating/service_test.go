package aggregating

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/period"
)

func testWindow() period.Window {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	window, _ := period.Resolve("LAST_SEVEN_DAYS", now)
	return window
}

func TestCount(t *testing.T) {
	window := testWindow()

	tests := []struct {
		name               string
		currentCount       int64
		previousCount      int64
		expectedAbsolute   int64
		expectedPercentage int64
	}{
		{
			name:               "crescimento sobre base anterior",
			currentCount:       10,
			previousCount:      5,
			expectedAbsolute:   5,
			expectedPercentage: 100,
		},
		{
			name:               "queda sobre base anterior",
			currentCount:       5,
			previousCount:      10,
			expectedAbsolute:   -5,
			expectedPercentage: -50,
		},
		{
			name:               "base anterior zerada com atividade nova",
			currentCount:       7,
			previousCount:      0,
			expectedAbsolute:   7,
			expectedPercentage: 100,
		},
		{
			name:               "ambos os períodos zerados",
			currentCount:       0,
			previousCount:      0,
			expectedAbsolute:   0,
			expectedPercentage: 0,
		},
		{
			name:               "contagens iguais",
			currentCount:       42,
			previousCount:      42,
			expectedAbsolute:   0,
			expectedPercentage: 0,
		},
		{
			name:               "arredondamento da variação",
			currentCount:       2,
			previousCount:      3,
			expectedAbsolute:   -1,
			expectedPercentage: -33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEventStore := mocks.NewMockEventStore(ctrl)
			service := NewService(mockEventStore)

			mockEventStore.EXPECT().
				CountByOffice(gomock.Any(), domain.EventProfileView, "office-1", window.CurrentStart, window.CurrentEnd).
				Return(tt.currentCount, nil)
			mockEventStore.EXPECT().
				CountByOffice(gomock.Any(), domain.EventProfileView, "office-1", window.PreviousStart, window.PreviousEnd).
				Return(tt.previousCount, nil)

			result, err := service.Count(context.Background(), domain.EventProfileView, "office-1", window)
			require.NoError(t, err)

			assert.Equal(t, domain.EventProfileView, result.Metric)
			assert.Equal(t, tt.currentCount, result.CurrentCount)
			assert.Equal(t, tt.previousCount, result.PreviousCount)
			assert.Equal(t, tt.expectedAbsolute, result.AbsoluteChange)
			require.NotNil(t, result.PercentageChange)
			assert.Equal(t, tt.expectedPercentage, *result.PercentageChange)
		})
	}
}

func TestCountAllHistorySkipsPreviousPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEventStore := mocks.NewMockEventStore(ctrl)
	service := NewService(mockEventStore)

	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	window, err := period.Resolve("ALL_HISTORY", now)
	require.NoError(t, err)

	// Uma única consulta: ALL_HISTORY não tem período anterior comparável
	mockEventStore.EXPECT().
		CountByOffice(gomock.Any(), domain.EventPhoneCall, "office-1", window.CurrentStart, window.CurrentEnd).
		Return(int64(120), nil).
		Times(1)

	result, err := service.Count(context.Background(), domain.EventPhoneCall, "office-1", window)
	require.NoError(t, err)

	assert.Equal(t, int64(120), result.CurrentCount)
	assert.Equal(t, int64(0), result.PreviousCount)
	assert.Equal(t, int64(120), result.AbsoluteChange)
	assert.Nil(t, result.PercentageChange)
}

func TestCountMapsStorageErrors(t *testing.T) {
	window := testWindow()

	tests := []struct {
		name        string
		storeErr    error
		expectedErr error
	}{
		{
			name:        "deadline excedido vira timeout",
			storeErr:    context.DeadlineExceeded,
			expectedErr: ErrTimeout,
		},
		{
			name:        "conexão ruim vira indisponível",
			storeErr:    driver.ErrBadConn,
			expectedErr: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEventStore := mocks.NewMockEventStore(ctrl)
			service := NewService(mockEventStore)

			mockEventStore.EXPECT().
				CountByOffice(gomock.Any(), domain.EventGpsClick, "office-1", window.CurrentStart, window.CurrentEnd).
				Return(int64(0), tt.storeErr)

			_, err := service.Count(context.Background(), domain.EventGpsClick, "office-1", window)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestCountIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEventStore := mocks.NewMockEventStore(ctrl)
	service := NewService(mockEventStore)

	window := testWindow()

	mockEventStore.EXPECT().
		CountByOffice(gomock.Any(), domain.EventProfileView, "office-1", window.CurrentStart, window.CurrentEnd).
		Return(int64(8), nil).
		Times(2)
	mockEventStore.EXPECT().
		CountByOffice(gomock.Any(), domain.EventProfileView, "office-1", window.PreviousStart, window.PreviousEnd).
		Return(int64(4), nil).
		Times(2)

	first, err := service.Count(context.Background(), domain.EventProfileView, "office-1", window)
	require.NoError(t, err)

	second, err := service.Count(context.Background(), domain.EventProfileView, "office-1", window)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCountMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEventStore := mocks.NewMockEventStore(ctrl)
	service := NewService(mockEventStore)

	start := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	officeIDs := []string{"office-1", "office-2", "office-3"}

	mockEventStore.EXPECT().
		CountGroupedByOffice(gomock.Any(), domain.EventProfileView, officeIDs, start, end).
		Return(map[string]int64{"office-1": 12, "office-3": 4}, nil).
		Times(1)

	counts, err := service.CountMany(context.Background(), domain.EventProfileView, officeIDs, start, end)
	require.NoError(t, err)

	// Escritório sem eventos fica ausente do mapa, nunca é erro
	assert.Equal(t, map[string]int64{"office-1": 12, "office-3": 4}, counts)
}

func TestCountManyEmptyListSkipsStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEventStore := mocks.NewMockEventStore(ctrl)
	service := NewService(mockEventStore)

	mockEventStore.EXPECT().
		CountGroupedByOffice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	counts, err := service.CountMany(context.Background(), domain.EventProfileView, nil, time.Now(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestCountManyIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEventStore := mocks.NewMockEventStore(ctrl)
	service := NewService(mockEventStore)

	start := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	officeIDs := []string{"office-1", "office-2"}

	mockEventStore.EXPECT().
		CountGroupedByOffice(gomock.Any(), domain.EventGpsClick, officeIDs, start, end).
		Return(map[string]int64{"office-1": 6}, nil).
		Times(2)

	first, err := service.CountMany(context.Background(), domain.EventGpsClick, officeIDs, start, end)
	require.NoError(t, err)

	second, err := service.CountMany(context.Background(), domain.EventGpsClick, officeIDs, start, end)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCountManyMapsStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEventStore := mocks.NewMockEventStore(ctrl)
	service := NewService(mockEventStore)

	mockEventStore.EXPECT().
		CountGroupedByOffice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	_, err := service.CountMany(context.Background(), domain.EventProfileView, []string{"office-1"}, time.Now(), time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestMapStorageErrorPassesThroughUnknownErrors(t *testing.T) {
	original := errors.New("erro qualquer")

	assert.Equal(t, original, mapStorageError(original))
	assert.NoError(t, mapStorageError(nil))
}
