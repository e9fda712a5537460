package inventorying

import "errors"

// Erros de validação do contexto de inventário
var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrNegativePrice       = errors.New("product price must be non-negative")
	ErrSaleDateRequired    = errors.New("sale date is required")
	ErrProductIDRequired   = errors.New("sale product ID is required")
	ErrNonPositiveQuantity = errors.New("quantity sold must be positive")
	ErrNegativeTotalPrice  = errors.New("sale total price must be non-negative")
)
