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
	saleItemsTable = "sale_items si"
)

type SaleItemRepository interface {
	ListSaleItems(ctx context.Context) ([]*domain.SaleItem, error)
}

type saleItemRepository struct {
	conn *postgres.Connection
}

func NewSaleItemRepository(conn *postgres.Connection) SaleItemRepository {
	return &saleItemRepository{
		conn: conn,
	}
}

// ListSaleItems retorna os itens de todas as vendas. A associação com a venda
// é feita em memória pelo normalizador.
func (r *saleItemRepository) ListSaleItems(ctx context.Context) ([]*domain.SaleItem, error) {
	query, args, err := squirrel.
		Select("si.id, si.sale_id, si.product_name, si.quantity, si.subtotal").
		From(saleItemsTable).
		OrderBy("si.id ASC").
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

	items := make([]*domain.SaleItem, 0)
	for rows.Next() {
		item := &domain.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductName,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item de venda: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
