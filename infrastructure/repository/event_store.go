// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/exchange-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/pkg/utils"
)

const (
	profileViewsTable  = "profile_views"
	phoneCallsTable    = "phone_calls"
	gpsClicksTable     = "gps_clicks"
	rateHistoriesTable = "rate_histories"
)

type eventTable struct {
	name       string
	timeColumn string
}

// eventTables mapeia cada tipo de evento para sua tabela e coluna de tempo.
// Todas as tabelas têm índice composto (office_id, <coluna de tempo>) e índice
// simples na coluna de tempo; sem eles as varreduras de intervalo inviabilizam
// a agregação em lote.
var eventTables = map[domain.EventKind]eventTable{
	domain.EventProfileView: {name: profileViewsTable, timeColumn: "occurred_at"},
	domain.EventPhoneCall:   {name: phoneCallsTable, timeColumn: "occurred_at"},
	domain.EventGpsClick:    {name: gpsClicksTable, timeColumn: "occurred_at"},
	domain.EventRateChange:  {name: rateHistoriesTable, timeColumn: "created_at"},
}

// EventStore é a persistência append-only dos eventos de interação, com as
// consultas de contagem por intervalo usadas pelos agregadores. Os limites de
// intervalo seguem semântica semiaberta [start, end).
type EventStore interface {
	Append(ctx context.Context, kind domain.EventKind, event *domain.InteractionEvent) error
	CountByOffice(ctx context.Context, kind domain.EventKind, officeID string, start, end time.Time) (int64, error)
	CountGroupedByOffice(ctx context.Context, kind domain.EventKind, officeIDs []string, start, end time.Time) (map[string]int64, error)
}

type eventStore struct {
	conn *postgres.Connection
}

func NewEventStore(conn *postgres.Connection) EventStore {
	return &eventStore{
		conn: conn,
	}
}

// Append insere um evento imutável. O occurred_at é atribuído pelo banco no
// momento da inserção e devolvido no próprio evento; nunca é atualizado depois.
func (r *eventStore) Append(ctx context.Context, kind domain.EventKind, event *domain.InteractionEvent) error {
	table, ok := eventTables[kind]
	if !ok || kind == domain.EventRateChange {
		return fmt.Errorf("tipo de evento não suportado para inserção: %s", kind)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID do evento: %w", err)
	}

	columns := []string{"id", "office_id", "actor_id"}
	values := []interface{}{id, event.OfficeID, event.ActorID}

	if kind == domain.EventPhoneCall {
		columns = append(columns, "phone_number", "phone_type")
		values = append(values, event.PhoneNumber, event.PhoneType)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(table.name).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING occurred_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&event.OccurredAt); err != nil {
		return fmt.Errorf("erro ao inserir evento: %w", err)
	}

	event.ID = id
	return nil
}

// countByOfficeQuery monta a contagem de um escritório no intervalo semiaberto:
// inclui a borda inicial (>= start) e exclui a final (< end), para que janelas
// contíguas nunca contem o mesmo evento duas vezes
func countByOfficeQuery(table eventTable, officeID string, start, end time.Time) (string, []interface{}, error) {
	return squirrel.
		Select("COUNT(*)").
		From(table.name).
		Where(squirrel.Eq{"office_id": officeID}).
		Where(squirrel.GtOrEq{table.timeColumn: start}).
		Where(squirrel.Lt{table.timeColumn: end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// countGroupedByOfficeQuery monta a contagem agrupada de vários escritórios no
// mesmo intervalo semiaberto
func countGroupedByOfficeQuery(table eventTable, officeIDs []string, start, end time.Time) (string, []interface{}, error) {
	return squirrel.
		Select("office_id", "COUNT(*) AS total").
		From(table.name).
		Where(squirrel.Eq{"office_id": officeIDs}).
		Where(squirrel.GtOrEq{table.timeColumn: start}).
		Where(squirrel.Lt{table.timeColumn: end}).
		GroupBy("office_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// CountByOffice conta os eventos de um escritório no intervalo [start, end)
func (r *eventStore) CountByOffice(ctx context.Context, kind domain.EventKind, officeID string, start, end time.Time) (int64, error) {
	table, ok := eventTables[kind]
	if !ok {
		return 0, fmt.Errorf("tipo de evento não suportado: %s", kind)
	}

	query, args, err := countByOfficeQuery(table, officeID, start, end)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar eventos: %w", err)
	}

	return count, nil
}

// CountGroupedByOffice conta os eventos de vários escritórios no intervalo
// [start, end) em uma única query agrupada. Escritórios sem eventos no
// intervalo não aparecem no mapa retornado.
func (r *eventStore) CountGroupedByOffice(ctx context.Context, kind domain.EventKind, officeIDs []string, start, end time.Time) (map[string]int64, error) {
	counts := make(map[string]int64)
	if len(officeIDs) == 0 {
		return counts, nil
	}

	table, ok := eventTables[kind]
	if !ok {
		return nil, fmt.Errorf("tipo de evento não suportado: %s", kind)
	}

	query, args, err := countGroupedByOfficeQuery(table, officeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return counts, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var officeID string
		var total int64
		if err := rows.Scan(&officeID, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem: %w", err)
		}
		counts[officeID] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}
