package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-sales-api/internal/domain"
)

const (
	productsTable = "db_product p"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context, skip, limit uint64) ([]*domain.Product, error)
	GetByID(ctx context.Context, productID int) (*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query, args, err := squirrel.
		Insert("db_product").
		Columns("name", "description", "price", "quantity").
		Values(product.Name, product.Description, product.Price, product.Quantity).
		Suffix("RETURNING product_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created := *product
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&created.ProductID); err != nil {
		return nil, fmt.Errorf("erro ao inserir produto: %w", translatePqError(err))
	}

	return &created, nil
}

func (r *productRepository) List(ctx context.Context, skip, limit uint64) ([]*domain.Product, error) {
	// ORDER BY explícito para que a paginação skip/limit seja determinística.
	query, args, err := squirrel.
		Select("p.product_id, p.name, p.description, p.price, p.quantity").
		From(productsTable).
		OrderBy("p.product_id ASC").
		Offset(skip).
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", translatePqError(err))
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", translatePqError(err))
	}

	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, productID int) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.product_id, p.name, p.description, p.price, p.quantity").
		From(productsTable).
		Where(squirrel.Eq{"p.product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(
		&product.ProductID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Quantity,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", translatePqError(err))
	}

	return product, nil
}

func (r *productRepository) scanProduct(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}

	err := rows.Scan(
		&product.ProductID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Quantity,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}
