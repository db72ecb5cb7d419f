package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações de consulta usado pelos repositórios.
// As agregações são sensíveis a timeout do chamador, então todas as variantes
// carregam contexto.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
