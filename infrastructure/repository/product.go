package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vhgravatas/pos-analytics-api/infrastructure/database/postgres"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.code, p.name, p.category, p.unit_price, p.current_stock").
		From(productsTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		var category sql.NullString

		err := rows.Scan(
			&product.ID,
			&product.Code,
			&product.Name,
			&category,
			&product.UnitPrice,
			&product.CurrentStock,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}

		product.Category = category.String

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
