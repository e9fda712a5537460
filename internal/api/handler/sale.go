package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-sales-api/internal/domain"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-sales-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-sales-api/pkg/log"
	"github.com/vfg2006/inventory-sales-api/pkg/utils"
)

type createSaleRequest struct {
	SaleDate     *string  `json:"sale_date"`
	ProductID    *int     `json:"product_id"`
	QuantitySold *int     `json:"quantity_sold"`
	TotalPrice   *float64 `json:"total_price"`
}

// Como na criação de produto, a resposta ecoa os campos sem o sale_id gerado.
type createSaleResponse struct {
	SaleDate     string  `json:"sale_date"`
	ProductID    int     `json:"product_id"`
	QuantitySold int     `json:"quantity_sold"`
	TotalPrice   float64 `json:"total_price"`
}

type saleResponse struct {
	SaleID       int     `json:"sale_id"`
	SaleDate     string  `json:"sale_date"`
	ProductID    int     `json:"product_id"`
	QuantitySold int     `json:"quantity_sold"`
	TotalPrice   float64 `json:"total_price"`
}

func newSaleResponse(sale *domain.Sale) saleResponse {
	return saleResponse{
		SaleID:       sale.SaleID,
		SaleDate:     utils.FormatDate(sale.SaleDate),
		ProductID:    sale.ProductID,
		QuantitySold: sale.QuantitySold,
		TotalPrice:   sale.TotalPrice,
	}
}

func newSaleResponseList(sales []*domain.Sale) []saleResponse {
	list := make([]saleResponse, 0, len(sales))
	for _, sale := range sales {
		list = append(list, newSaleResponse(sale))
	}
	return list
}

// CreateSale registra uma venda de um produto existente
func CreateSale(service inventorying.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req createSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if req.SaleDate == nil || req.ProductID == nil || req.QuantitySold == nil || req.TotalPrice == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"Campos sale_date, product_id, quantity_sold e total_price são obrigatórios", nil)
			return
		}

		saleDate, err := utils.ParseDate(*req.SaleDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "sale_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		sale := &domain.Sale{
			SaleDate:     saleDate,
			ProductID:    *req.ProductID,
			QuantitySold: *req.QuantitySold,
			TotalPrice:   *req.TotalPrice,
		}

		created, err := service.CreateSale(r.Context(), sale)
		if err != nil {
			logger.WithError(err).WithField("product_id", sale.ProductID).
				Error("sales: erro ao registrar venda")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"sale_id":    created.SaleID,
			"product_id": created.ProductID,
		}).Info("sales: venda registrada")

		respondJSON(w, r, createSaleResponse{
			SaleDate:     utils.FormatDate(created.SaleDate),
			ProductID:    created.ProductID,
			QuantitySold: created.QuantitySold,
			TotalPrice:   created.TotalPrice,
		})
	})
}

// ListSales lista vendas com paginação skip/limit
func ListSales(service inventorying.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		skip, limit, err := paginationParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros skip e limit devem ser inteiros não negativos", nil)
			return
		}

		sales, err := service.ListSales(r.Context(), skip, limit)
		if err != nil {
			logger.WithError(err).Error("sales: erro ao listar vendas")
			writeServiceError(w, err)
			return
		}

		respondJSON(w, r, newSaleResponseList(sales))
	})
}
