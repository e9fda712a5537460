package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-sales-api/infrastructure/repository"
	"github.com/vfg2006/inventory-sales-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-sales-api/internal/domain"
	"github.com/vfg2006/inventory-sales-api/internal/usecases/revenue"
)

// Fakes com campos de função para simular os serviços nas rotas reais.

type fakeInventoryService struct {
	createProduct       func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	listProducts        func(ctx context.Context, skip, limit uint64) ([]*domain.Product, error)
	createSale          func(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	listSales           func(ctx context.Context, skip, limit uint64) ([]*domain.Sale, error)
	listSalesForProduct func(ctx context.Context, productID int) ([]*domain.Sale, error)
}

func (f *fakeInventoryService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return f.createProduct(ctx, product)
}

func (f *fakeInventoryService) ListProducts(ctx context.Context, skip, limit uint64) ([]*domain.Product, error) {
	return f.listProducts(ctx, skip, limit)
}

func (f *fakeInventoryService) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	return f.createSale(ctx, sale)
}

func (f *fakeInventoryService) ListSales(ctx context.Context, skip, limit uint64) ([]*domain.Sale, error) {
	return f.listSales(ctx, skip, limit)
}

func (f *fakeInventoryService) ListSalesForProduct(ctx context.Context, productID int) ([]*domain.Sale, error) {
	return f.listSalesForProduct(ctx, productID)
}

type fakeAggregator struct {
	daily   func(ctx context.Context) (*domain.DailyRevenue, error)
	weekly  func(ctx context.Context) (*domain.PeriodRevenue, error)
	monthly func(ctx context.Context, year, month int) (*domain.PeriodRevenue, error)
	annual  func(ctx context.Context) (*domain.PeriodRevenue, error)
}

func (f *fakeAggregator) Daily(ctx context.Context) (*domain.DailyRevenue, error) {
	return f.daily(ctx)
}

func (f *fakeAggregator) Weekly(ctx context.Context) (*domain.PeriodRevenue, error) {
	return f.weekly(ctx)
}

func (f *fakeAggregator) Monthly(ctx context.Context, year, month int) (*domain.PeriodRevenue, error) {
	return f.monthly(ctx, year, month)
}

func (f *fakeAggregator) Annual(ctx context.Context) (*domain.PeriodRevenue, error) {
	return f.annual(ctx)
}

func serveRequest(rt router.Router, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestCreateProductHandler(t *testing.T) {
	t.Run("Resposta de criação ecoa os campos sem o id gerado", func(t *testing.T) {
		service := &fakeInventoryService{
			createProduct: func(_ context.Context, product *domain.Product) (*domain.Product, error) {
				created := *product
				created.ProductID = 7
				return &created, nil
			},
		}
		rt := router.New(router.WithRoutes(Products(service)...))

		rec := serveRequest(rt, http.MethodPost, "/products/",
			`{"name":"Teclado mecânico","description":"ABNT2","price":349.9,"quantity":12}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Teclado mecânico", body["name"])
		assert.Equal(t, 349.9, body["price"])
		assert.NotContains(t, body, "product_id", "formato legado: criação não expõe o id")
	})

	t.Run("Campos obrigatórios ausentes retornam 400", func(t *testing.T) {
		rt := router.New(router.WithRoutes(Products(&fakeInventoryService{})...))

		rec := serveRequest(rt, http.MethodPost, "/products/", `{"description":"sem nome nem preço"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "VAL_002", body["code"])
	})

	t.Run("Corpo inválido retorna 400", func(t *testing.T) {
		rt := router.New(router.WithRoutes(Products(&fakeInventoryService{})...))

		rec := serveRequest(rt, http.MethodPost, "/products/", `{name:`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListProductSalesHandler(t *testing.T) {
	t.Run("Produto inexistente retorna 404 e corpo de erro, não lista", func(t *testing.T) {
		service := &fakeInventoryService{
			listSalesForProduct: func(_ context.Context, productID int) ([]*domain.Sale, error) {
				return nil, repository.ErrProductNotFound
			},
		}
		rt := router.New(router.WithRoutes(Products(service)...))

		rec := serveRequest(rt, http.MethodGet, "/products/999/sales", "")

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "RES_001", body["code"])
	})

	t.Run("Produto existente retorna as vendas com sale_id e data formatada", func(t *testing.T) {
		service := &fakeInventoryService{
			listSalesForProduct: func(_ context.Context, productID int) ([]*domain.Sale, error) {
				return []*domain.Sale{
					{
						SaleID:       1,
						SaleDate:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
						ProductID:    productID,
						QuantitySold: 2,
						TotalPrice:   50.0,
					},
				}, nil
			},
		}
		rt := router.New(router.WithRoutes(Products(service)...))

		rec := serveRequest(rt, http.MethodGet, "/products/1/sales", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, float64(1), body[0]["sale_id"])
		assert.Equal(t, "2024-01-10", body[0]["sale_date"])
	})
}

func TestCreateSaleHandler(t *testing.T) {
	t.Run("Venda para produto inexistente retorna 400 com código de FK", func(t *testing.T) {
		service := &fakeInventoryService{
			createSale: func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
				return nil, repository.ErrForeignKeyViolation
			},
		}
		rt := router.New(router.WithRoutes(Sales(service)...))

		rec := serveRequest(rt, http.MethodPost, "/sales/",
			`{"sale_date":"2024-01-10","product_id":999,"quantity_sold":1,"total_price":10}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "RES_002", body["code"])
	})

	t.Run("Data fora do formato YYYY-MM-DD retorna 400", func(t *testing.T) {
		rt := router.New(router.WithRoutes(Sales(&fakeInventoryService{})...))

		rec := serveRequest(rt, http.MethodPost, "/sales/",
			`{"sale_date":"10/01/2024","product_id":1,"quantity_sold":1,"total_price":10}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "VAL_003", body["code"])
	})
}

func TestGetMonthlyRevenueHandler(t *testing.T) {
	t.Run("Parâmetros year e month são obrigatórios", func(t *testing.T) {
		rt := router.New(router.WithRoutes(Revenue(&fakeAggregator{})...))

		rec := serveRequest(rt, http.MethodGet, "/revenue/monthly?year=2024", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "VAL_002", body["code"])
	})

	t.Run("Mês fora de 1-12 retorna 400", func(t *testing.T) {
		service := &fakeAggregator{
			monthly: func(_ context.Context, year, month int) (*domain.PeriodRevenue, error) {
				return nil, revenue.ErrInvalidMonth
			},
		}
		rt := router.New(router.WithRoutes(Revenue(service)...))

		rec := serveRequest(rt, http.MethodGet, "/revenue/monthly?year=2024&month=13", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Mês válido retorna limites e total", func(t *testing.T) {
		service := &fakeAggregator{
			monthly: func(_ context.Context, year, month int) (*domain.PeriodRevenue, error) {
				assert.Equal(t, 2024, year)
				assert.Equal(t, 1, month)
				return &domain.PeriodRevenue{
					StartDate:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
					EndDate:      time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
					TotalRevenue: 80.0,
				}, nil
			},
		}
		rt := router.New(router.WithRoutes(Revenue(service)...))

		rec := serveRequest(rt, http.MethodGet, "/revenue/monthly?year=2024&month=1", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "2024-01-01", body["start_date"])
		assert.Equal(t, "2024-02-01", body["end_date"])
		assert.Equal(t, 80.0, body["total_revenue"])
	})
}

func TestGetDailyRevenueHandler(t *testing.T) {
	service := &fakeAggregator{
		daily: func(_ context.Context) (*domain.DailyRevenue, error) {
			return &domain.DailyRevenue{
				Date:         time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
				TotalRevenue: 0.0,
			}, nil
		},
	}
	rt := router.New(router.WithRoutes(Revenue(service)...))

	rec := serveRequest(rt, http.MethodGet, "/revenue/daily", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-01-16", body["date"])
	assert.Equal(t, 0.0, body["total_revenue"], "dia sem vendas retorna 0.0, não erro")
}
