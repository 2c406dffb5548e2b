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
	salesTable = "sales s"
)

type SaleRepository interface {
	ListSales(ctx context.Context) ([]*domain.SaleRecord, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListSales retorna todas as vendas registradas, sem filtro de janela. O
// recorte temporal é responsabilidade do motor de agregação.
func (r *saleRepository) ListSales(ctx context.Context) ([]*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("s.id, s.sale_number, s.created_at, s.business_date, s.customer_name, s.vendor_name, s.final_amount, s.payment_mode, s.status").
		From(salesTable).
		OrderBy("s.created_at DESC").
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

	sales := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) scanSale(rows *sql.Rows) (*domain.SaleRecord, error) {
	sale := &domain.SaleRecord{}
	var businessDate sql.NullTime
	var customerName sql.NullString
	var vendorName sql.NullString

	err := rows.Scan(
		&sale.ID,
		&sale.SaleNumber,
		&sale.CreatedAt,
		&businessDate,
		&customerName,
		&vendorName,
		&sale.FinalAmount,
		&sale.PaymentMode,
		&sale.Status,
	)
	if err != nil {
		return nil, err
	}

	// Datas inválidas ficam zeradas e são descartadas na filtragem por janela
	if businessDate.Valid {
		sale.BusinessDate = businessDate.Time
	}
	sale.CustomerName = customerName.String
	sale.VendorName = vendorName.String

	return sale, nil
}
