package inventorying

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-sales-api/infrastructure/repository"
	"github.com/vfg2006/inventory-sales-api/internal/domain"
)

// InventoryService expõe as operações de catálogo e de registro de vendas.
// Produtos e vendas não têm update nem delete: um produto nunca é removido
// enquanto houver vendas referenciando-o.
type InventoryService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, skip, limit uint64) ([]*domain.Product, error)
	CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	ListSales(ctx context.Context, skip, limit uint64) ([]*domain.Sale, error)
	ListSalesForProduct(ctx context.Context, productID int) ([]*domain.Sale, error)
}

type Service struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

func NewService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) InventoryService {
	return &Service{
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "creating product")
	}

	return created, nil
}

func (s *Service) ListProducts(ctx context.Context, skip, limit uint64) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing products")
	}
	return products, nil
}

func (s *Service) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if err := validateSale(sale); err != nil {
		return nil, err
	}

	// A integridade referencial fica com o banco: inserir com product_id
	// inexistente retorna ErrForeignKeyViolation, nada é persistido.
	created, err := s.saleRepo.Create(ctx, sale)
	if err != nil {
		return nil, errors.Wrap(err, "creating sale")
	}

	return created, nil
}

func (s *Service) ListSales(ctx context.Context, skip, limit uint64) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing sales")
	}
	return sales, nil
}

func (s *Service) ListSalesForProduct(ctx context.Context, productID int) ([]*domain.Sale, error) {
	// O produto precisa existir; caso contrário propaga ErrProductNotFound.
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "listing sales for product")
	}

	return sales, nil
}

func validateProduct(product *domain.Product) error {
	if product.Name == "" {
		return ErrProductNameRequired
	}
	if product.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func validateSale(sale *domain.Sale) error {
	if sale.SaleDate.IsZero() {
		return ErrSaleDateRequired
	}
	if sale.ProductID <= 0 {
		return ErrProductIDRequired
	}
	if sale.QuantitySold <= 0 {
		return ErrNonPositiveQuantity
	}
	if sale.TotalPrice < 0 {
		return ErrNegativeTotalPrice
	}
	return nil
}
