package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-sales-api/internal/domain"
)

const (
	salesTable = "db_sale s"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	List(ctx context.Context, skip, limit uint64) ([]*domain.Sale, error)
	ListByProduct(ctx context.Context, productID int) ([]*domain.Sale, error)
	SumTotalPriceInRange(ctx context.Context, start, end time.Time, endInclusive bool) (float64, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.
		Insert("db_sale").
		Columns("sale_date", "product_id", "quantity_sold", "total_price").
		Values(
			sale.SaleDate.Format(time.DateOnly),
			sale.ProductID,
			sale.QuantitySold,
			sale.TotalPrice,
		).
		Suffix("RETURNING sale_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created := *sale
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&created.SaleID); err != nil {
		return nil, fmt.Errorf("erro ao inserir venda: %w", translatePqError(err))
	}

	return &created, nil
}

func (r *saleRepository) List(ctx context.Context, skip, limit uint64) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.sale_id, s.sale_date, s.product_id, s.quantity_sold, s.total_price").
		From(salesTable).
		OrderBy("s.sale_id ASC").
		Offset(skip).
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(ctx, query, args)
}

// ListByProduct retorna todas as vendas do produto, sem paginação. O chamador
// é responsável por garantir que o produto existe.
func (r *saleRepository) ListByProduct(ctx context.Context, productID int) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.sale_id, s.sale_date, s.product_id, s.quantity_sold, s.total_price").
		From(salesTable).
		Where(squirrel.Eq{"s.product_id": productID}).
		OrderBy("s.sale_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(ctx, query, args)
}

// SumTotalPriceInRange soma total_price das vendas com sale_date no intervalo
// [start, end) — ou [start, end] quando endInclusive. Sem vendas no intervalo
// o resultado é 0.0, nunca NULL.
func (r *saleRepository) SumTotalPriceInRange(ctx context.Context, start, end time.Time, endInclusive bool) (float64, error) {
	builder := squirrel.
		Select("COALESCE(SUM(s.total_price), 0)").
		From(salesTable).
		Where(squirrel.GtOrEq{"s.sale_date": start.Format(time.DateOnly)})

	if endInclusive {
		builder = builder.Where(squirrel.LtOrEq{"s.sale_date": end.Format(time.DateOnly)})
	} else {
		builder = builder.Where(squirrel.Lt{"s.sale_date": end.Format(time.DateOnly)})
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar vendas: %w", translatePqError(err))
	}

	return total, nil
}

func (r *saleRepository) querySales(ctx context.Context, query string, args []interface{}) ([]*domain.Sale, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", translatePqError(err))
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", translatePqError(err))
	}

	return sales, nil
}

func (r *saleRepository) scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := rows.Scan(
		&sale.SaleID,
		&sale.SaleDate,
		&sale.ProductID,
		&sale.QuantitySold,
		&sale.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
