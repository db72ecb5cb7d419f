package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/exchange-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/pkg/utils"
)

const rateHistoryColumns = "rh.id, rh.office_id, rh.target_currency_id, rh.base_currency_id, " +
	"rh.old_buy_rate, rh.old_sell_rate, rh.new_buy_rate, rh.new_sell_rate, rh.is_active, rh.created_at"

// RateHistoryRepository persiste a trilha de auditoria de alterações de taxa.
// As entradas são imutáveis: só existe inserção e leitura por intervalo.
type RateHistoryRepository interface {
	Save(ctx context.Context, entry *domain.RateHistoryEntry) error
	ListByOffice(ctx context.Context, officeID string, start, end time.Time) ([]*domain.RateHistoryEntry, error)
}

type rateHistoryRepository struct {
	conn *postgres.Connection
}

func NewRateHistoryRepository(conn *postgres.Connection) RateHistoryRepository {
	return &rateHistoryRepository{
		conn: conn,
	}
}

func (r *rateHistoryRepository) Save(ctx context.Context, entry *domain.RateHistoryEntry) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID do histórico: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(rateHistoriesTable).
		Columns(
			"id",
			"office_id",
			"target_currency_id",
			"base_currency_id",
			"old_buy_rate",
			"old_sell_rate",
			"new_buy_rate",
			"new_sell_rate",
			"is_active",
		).
		Values(
			id,
			entry.OfficeID,
			entry.TargetCurrencyID,
			entry.BaseCurrencyID,
			entry.OldBuyRate,
			entry.OldSellRate,
			entry.NewBuyRate,
			entry.NewSellRate,
			entry.IsActive,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&entry.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir histórico de taxa: %w", err)
	}

	entry.ID = id
	return nil
}

// ListByOffice retorna as entradas de histórico de um escritório no intervalo
// [start, end), da mais recente para a mais antiga
func (r *rateHistoryRepository) ListByOffice(ctx context.Context, officeID string, start, end time.Time) ([]*domain.RateHistoryEntry, error) {
	query, args, err := squirrel.
		Select(rateHistoryColumns).
		From(rateHistoriesTable + " rh").
		Where(squirrel.Eq{"rh.office_id": officeID}).
		Where(squirrel.GtOrEq{"rh.created_at": start}).
		Where(squirrel.Lt{"rh.created_at": end}).
		OrderBy("rh.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.RateHistoryEntry{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.RateHistoryEntry, 0)
	for rows.Next() {
		entry := &domain.RateHistoryEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.OfficeID,
			&entry.TargetCurrencyID,
			&entry.BaseCurrencyID,
			&entry.OldBuyRate,
			&entry.OldSellRate,
			&entry.NewBuyRate,
			&entry.NewSellRate,
			&entry.IsActive,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de taxa: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
