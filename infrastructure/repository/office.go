package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/exchange-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
)

const officesTable = "offices o"

// OfficeRepository é a fronteira de leitura com o cadastro de escritórios,
// que pertence a outro serviço. Aqui só resolvemos existência e listagem de
// escritórios ativos para as agregações.
type OfficeRepository interface {
	GetByID(ctx context.Context, officeID string) (*domain.Office, error)
	ListActive(ctx context.Context) ([]*domain.Office, error)
}

type officeRepository struct {
	conn *postgres.Connection
}

func NewOfficeRepository(conn *postgres.Connection) OfficeRepository {
	return &officeRepository{
		conn: conn,
	}
}

// GetByID retorna o escritório ou nil quando não existe
func (r *officeRepository) GetByID(ctx context.Context, officeID string) (*domain.Office, error) {
	query, args, err := squirrel.
		Select("o.id, o.name, o.city_id, o.is_active, o.created_at").
		From(officesTable).
		Where(squirrel.Eq{"o.id": officeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	office := &domain.Office{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(&office.ID, &office.Name, &office.CityID, &office.IsActive, &office.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear escritório: %w", err)
	}

	return office, nil
}

func (r *officeRepository) ListActive(ctx context.Context) ([]*domain.Office, error) {
	query, args, err := squirrel.
		Select("o.id, o.name, o.city_id, o.is_active, o.created_at").
		From(officesTable).
		Where(squirrel.Eq{"o.is_active": true}).
		OrderBy("o.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Office{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	offices := make([]*domain.Office, 0)
	for rows.Next() {
		office := &domain.Office{}
		if err := rows.Scan(&office.ID, &office.Name, &office.CityID, &office.IsActive, &office.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear escritório: %w", err)
		}
		offices = append(offices, office)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return offices, nil
}
