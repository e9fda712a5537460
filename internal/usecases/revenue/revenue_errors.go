package revenue

import "errors"

// Erros de validação das janelas de receita
var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year is out of range")
)
