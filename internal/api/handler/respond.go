package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-sales-api/infrastructure/repository"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/revenue"
	"github.com/vfg2006/inventory-sales-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-sales-api/pkg/log"
)

var validationErrors = []error{
	inventorying.ErrProductNameRequired,
	inventorying.ErrNegativePrice,
	inventorying.ErrSaleDateRequired,
	inventorying.ErrProductIDRequired,
	inventorying.ErrNonPositiveQuantity,
	inventorying.ErrNegativeTotalPrice,
	revenue.ErrInvalidMonth,
	revenue.ErrInvalidYear,
	repository.ErrValidation,
}

// writeServiceError traduz erros das camadas de negócio e de dados para a
// taxonomia da API.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
	case errors.Is(err, repository.ErrForeignKeyViolation):
		apiErrors.WriteError(w, apiErrors.ErrForeignKeyViolation, "Venda referencia produto inexistente", nil)
	case isValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, repository.ErrStoreUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Falha na operação de banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func isValidationError(err error) bool {
	for _, validationErr := range validationErrors {
		if errors.Is(err, validationErr) {
			return true
		}
	}
	return false
}

// respondJSON serializa o corpo de resposta com status 200.
func respondJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}
