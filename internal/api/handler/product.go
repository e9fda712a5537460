package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/inventory-sales-api/internal/domain"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-sales-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-sales-api/pkg/log"
)

// Campos com ponteiro para distinguir ausência de valor zero no corpo.
type createProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

// A resposta de criação ecoa os campos enviados, sem o id gerado. O formato
// vem do sistema legado e é mantido por compatibilidade (ver DESIGN.md).
type createProductResponse struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Quantity    *int    `json:"quantity"`
}

// CreateProduct insere um novo produto no catálogo
func CreateProduct(service inventorying.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req createProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if req.Name == nil || req.Price == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos name e price são obrigatórios", nil)
			return
		}

		product := &domain.Product{
			Name:        *req.Name,
			Description: req.Description,
			Price:       *req.Price,
			Quantity:    req.Quantity,
		}

		created, err := service.CreateProduct(r.Context(), product)
		if err != nil {
			logger.WithError(err).Error("products: erro ao criar produto")
			writeServiceError(w, err)
			return
		}

		logger.WithField("product_id", created.ProductID).Info("products: produto criado")

		respondJSON(w, r, createProductResponse{
			Name:        created.Name,
			Description: created.Description,
			Price:       created.Price,
			Quantity:    created.Quantity,
		})
	})
}

// ListProducts lista produtos com paginação skip/limit
func ListProducts(service inventorying.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		skip, limit, err := paginationParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros skip e limit devem ser inteiros não negativos", nil)
			return
		}

		products, err := service.ListProducts(r.Context(), skip, limit)
		if err != nil {
			logger.WithError(err).Error("products: erro ao listar produtos")
			writeServiceError(w, err)
			return
		}

		respondJSON(w, r, products)
	})
}

// ListProductSales lista todas as vendas de um produto; 404 se ele não existe
func ListProductSales(service inventorying.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		productID, err := strconv.Atoi(params.ByName("product_id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "product_id deve ser um inteiro", nil)
			return
		}

		sales, err := service.ListSalesForProduct(r.Context(), productID)
		if err != nil {
			logger.WithError(err).WithField("product_id", productID).
				Warn("products: erro ao listar vendas do produto")
			writeServiceError(w, err)
			return
		}

		respondJSON(w, r, newSaleResponseList(sales))
	})
}

// paginationParams lê skip/limit da query string, com os defaults do legado.
func paginationParams(r *http.Request) (skip, limit uint64, err error) {
	skip, limit = 0, 10

	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, err
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, err
		}
	}

	return skip, limit, nil
}
