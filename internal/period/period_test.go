package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Token
		wantErr  bool
	}{
		{name: "token canônico de sete dias", raw: "LAST_SEVEN_DAYS", expected: LastSevenDays},
		{name: "token canônico de um mês", raw: "LAST_ONE_MONTH", expected: LastOneMonth},
		{name: "token canônico de seis meses", raw: "LAST_SIX_MONTHS", expected: LastSixMonths},
		{name: "token canônico de um ano", raw: "LAST_ONE_YEAR", expected: LastOneYear},
		{name: "token de histórico completo", raw: "ALL_HISTORY", expected: AllHistory},
		{name: "alias legado 7days", raw: "7days", expected: LastSevenDays},
		{name: "alias legado 30days", raw: "30days", expected: LastOneMonth},
		{name: "alias legado 90days", raw: "90days", expected: LastSixMonths},
		{name: "token desconhecido", raw: "14days", wantErr: true},
		{name: "token vazio", raw: "", wantErr: true},
		{name: "case sensitive", raw: "last_seven_days", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := Parse(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPeriodToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestResolve(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name                  string
		raw                   string
		expectedCurrentStart  time.Time
		expectedPreviousStart time.Time
	}{
		{
			name:                  "sete dias",
			raw:                   "LAST_SEVEN_DAYS",
			expectedCurrentStart:  time.Date(2025, 3, 8, 10, 30, 0, 0, time.UTC),
			expectedPreviousStart: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:                  "um mês",
			raw:                   "LAST_ONE_MONTH",
			expectedCurrentStart:  time.Date(2025, 2, 15, 10, 30, 0, 0, time.UTC),
			expectedPreviousStart: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:                  "seis meses",
			raw:                   "LAST_SIX_MONTHS",
			expectedCurrentStart:  time.Date(2024, 9, 15, 10, 30, 0, 0, time.UTC),
			expectedPreviousStart: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:                  "um ano",
			raw:                   "LAST_ONE_YEAR",
			expectedCurrentStart:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
			expectedPreviousStart: time.Date(2023, 3, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := Resolve(tt.raw, now)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedCurrentStart, window.CurrentStart)
			assert.Equal(t, now, window.CurrentEnd)
			assert.Equal(t, tt.expectedPreviousStart, window.PreviousStart)

			// Janelas semiabertas contíguas: o fim do período anterior coincide
			// com o início do atual, sem sobreposição e sem lacuna
			assert.Equal(t, window.CurrentStart, window.PreviousEnd)
			assert.False(t, window.AllHistory())
		})
	}
}

func TestResolveAllHistory(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	window, err := Resolve("ALL_HISTORY", now)
	require.NoError(t, err)

	assert.True(t, window.AllHistory())
	assert.Equal(t, time.Unix(0, 0).UTC(), window.CurrentStart)
	assert.Equal(t, now, window.CurrentEnd)
	assert.True(t, window.PreviousStart.IsZero())
	assert.True(t, window.PreviousEnd.IsZero())
}

func TestResolveMonthEndNormalization(t *testing.T) {
	// 31 de março menos um mês seria 31 de fevereiro; AddDate normaliza para
	// uma data válida em vez de falhar
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	window, err := Resolve("LAST_ONE_MONTH", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), window.CurrentStart)
	assert.Equal(t, window.CurrentStart, window.PreviousEnd)
	assert.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), window.PreviousStart)
}

func TestResolveInvalidToken(t *testing.T) {
	_, err := Resolve("yesterday", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriodToken)
}

func TestResolveIsDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first, err := Resolve("LAST_SEVEN_DAYS", now)
	require.NoError(t, err)

	second, err := Resolve("LAST_SEVEN_DAYS", now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
