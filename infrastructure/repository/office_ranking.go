package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/exchange-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
)

const officeRankingTable = "office_ranking orr"

type OfficeRankingRepository interface {
	GetByOfficeID(ctx context.Context, officeID string, month string) (*domain.OfficeRankingItem, error)
	GetRanking(ctx context.Context) (*domain.OfficeRankingResponse, error)
	SaveOrUpdateRanking(ctx context.Context, rankings []*domain.OfficeRankingItem) error
}

type officeRankingRepository struct {
	conn *postgres.Connection
}

func NewOfficeRankingRepository(conn *postgres.Connection) OfficeRankingRepository {
	return &officeRankingRepository{
		conn: conn,
	}
}

// GetRanking retorna o snapshot de ranking do mês corrente, ordenado por posição
func (r *officeRankingRepository) GetRanking(ctx context.Context) (*domain.OfficeRankingResponse, error) {
	yesterday := time.Now().AddDate(0, 0, -1)
	month := yesterday.Format("01-2006")

	queryBuilder := squirrel.
		Select(
			"orr.id",
			"orr.office_id",
			"orr.month",
			"orr.office_name",
			"orr.profile_views",
			"orr.position",
			"orr.position_change",
			"orr.previous_position",
			"orr.created_at",
			"orr.updated_at",
		).
		From(officeRankingTable).
		Where(squirrel.Eq{"orr.month": month}).
		OrderBy("orr.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.OfficeRankingResponse{
				Ranking:    []domain.OfficeRankingItem{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.OfficeRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := r.scanRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.OfficeRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *officeRankingRepository) GetByOfficeID(ctx context.Context, officeID string, month string) (*domain.OfficeRankingItem, error) {
	query, args, err := squirrel.
		Select("orr.id, orr.office_id, orr.month, orr.office_name, orr.profile_views, orr.position, orr.position_change, orr.previous_position, orr.created_at, orr.updated_at").
		From(officeRankingTable).
		Where(squirrel.Eq{"orr.office_id": officeID, "orr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item := &domain.OfficeRankingItem{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&item.ID,
		&item.OfficeID,
		&item.Month,
		&item.OfficeName,
		&item.ProfileViews,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}

	return item, nil
}

func (r *officeRankingRepository) SaveOrUpdateRanking(ctx context.Context, rankings []*domain.OfficeRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("office_ranking").
		Columns(
			"office_id",
			"month",
			"office_name",
			"profile_views",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.OfficeID,
			ranking.Month,
			ranking.OfficeName,
			ranking.ProfileViews,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (office_id, month) DO UPDATE SET
			office_name = EXCLUDED.office_name,
			profile_views = EXCLUDED.profile_views,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *officeRankingRepository) scanRankingItem(rows *sql.Rows) (*domain.OfficeRankingItem, error) {
	item := &domain.OfficeRankingItem{}

	err := rows.Scan(
		&item.ID,
		&item.OfficeID,
		&item.Month,
		&item.OfficeName,
		&item.ProfileViews,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
