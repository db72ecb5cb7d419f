package aggregating

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// Erros da camada de agregação. ErrTimeout é seguro de repetir (as consultas
// são somente leitura); ErrStorageUnavailable deve ser repetido com backoff
// pelo chamador; os demais indicam erro do chamador e não devem ser repetidos.
var (
	ErrOfficeNotFound     = errors.New("escritório não encontrado")
	ErrTimeout            = errors.New("consulta de agregação excedeu o tempo limite")
	ErrStorageUnavailable = errors.New("armazenamento de eventos indisponível")
)

// mapStorageError traduz erros do armazenamento para a taxonomia da agregação,
// preservando o erro original na cadeia
func mapStorageError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return err
}
