package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByOfficeQueryUsesHalfOpenInterval(t *testing.T) {
	start := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		table eventTable
	}{
		{name: "visualizações de perfil", table: eventTable{name: profileViewsTable, timeColumn: "occurred_at"}},
		{name: "ligações", table: eventTable{name: phoneCallsTable, timeColumn: "occurred_at"}},
		{name: "cliques no gps", table: eventTable{name: gpsClicksTable, timeColumn: "occurred_at"}},
		{name: "histórico de taxas", table: eventTable{name: rateHistoriesTable, timeColumn: "created_at"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := countByOfficeQuery(tt.table, "office-1", start, end)
			require.NoError(t, err)

			// Borda inicial inclusiva e final exclusiva: um evento exatamente em
			// start pertence à janela; um exatamente em end pertence à próxima
			assert.Contains(t, query, tt.table.timeColumn+" >= ")
			assert.Contains(t, query, tt.table.timeColumn+" < ")
			assert.NotContains(t, query, "<=")
			assert.NotContains(t, query, "BETWEEN")

			assert.Contains(t, query, "FROM "+tt.table.name)
			assert.Equal(t, []interface{}{"office-1", start, end}, args)
		})
	}
}

func TestCountGroupedByOfficeQueryUsesHalfOpenInterval(t *testing.T) {
	start := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	table := eventTable{name: profileViewsTable, timeColumn: "occurred_at"}

	query, args, err := countGroupedByOfficeQuery(table, []string{"office-1", "office-2"}, start, end)
	require.NoError(t, err)

	assert.Contains(t, query, "occurred_at >= ")
	assert.Contains(t, query, "occurred_at < ")
	assert.NotContains(t, query, "<=")

	// Uma única query agrupada: IN na lista de escritórios + GROUP BY
	assert.Contains(t, query, "office_id IN ")
	assert.Contains(t, query, "GROUP BY office_id")

	assert.Equal(t, []interface{}{"office-1", "office-2", start, end}, args)
}
