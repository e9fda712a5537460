package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Erros sentinela do acesso a dados. As camadas superiores decidem o status
// HTTP a partir deles via errors.Is.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrForeignKeyViolation = errors.New("sale references a nonexistent product")
	ErrValidation          = errors.New("record violates a data constraint")
	ErrStoreUnavailable    = errors.New("database operation failed")
)

// Classes de erro do Postgres que mapeiam para a taxonomia acima.
const (
	pqNotNullViolation    = pq.ErrorCode("23502")
	pqForeignKeyViolation = pq.ErrorCode("23503")
	pqCheckViolation      = pq.ErrorCode("23514")
)

// translatePqError converte códigos do driver em erros sentinela. Qualquer
// outra falha do banco vira ErrStoreUnavailable.
func translatePqError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return ErrForeignKeyViolation
		case pqNotNullViolation, pqCheckViolation:
			return ErrValidation
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
