package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-sales-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/revenue"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Products retorna as rotas do catálogo de produtos. Os caminhos com barra
// final vêm do sistema legado e são preservados.
func Products(service inventorying.InventoryService) []router.Route {
	return []router.Route{
		{
			Path:    "/products/",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/products/",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/products/:product_id/sales",
			Method:  http.MethodGet,
			Handler: ListProductSales(service),
		},
	}
}

func Sales(service inventorying.InventoryService) []router.Route {
	return []router.Route{
		{
			Path:    "/sales/",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/sales/",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
	}
}

func Revenue(service revenue.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/revenue/daily",
			Method:  http.MethodGet,
			Handler: GetDailyRevenue(service),
		},
		{
			Path:    "/revenue/weekly",
			Method:  http.MethodGet,
			Handler: GetWeeklyRevenue(service),
		},
		{
			Path:    "/revenue/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlyRevenue(service),
		},
		{
			Path:    "/revenue/annual",
			Method:  http.MethodGet,
			Handler: GetAnnualRevenue(service),
		},
	}
}
