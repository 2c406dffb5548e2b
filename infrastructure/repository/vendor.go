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
	vendorsTable = "vendors v"
)

type VendorRepository interface {
	ListVendors(ctx context.Context) ([]*domain.Vendor, error)
}

type vendorRepository struct {
	conn *postgres.Connection
}

func NewVendorRepository(conn *postgres.Connection) VendorRepository {
	return &vendorRepository{
		conn: conn,
	}
}

func (r *vendorRepository) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	query, args, err := squirrel.
		Select("v.id, v.name, v.monthly_target, v.photo_url").
		From(vendorsTable).
		OrderBy("v.name ASC").
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

	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		vendor := &domain.Vendor{}
		var monthlyTarget sql.NullFloat64
		var photoURL sql.NullString

		err := rows.Scan(
			&vendor.ID,
			&vendor.Name,
			&monthlyTarget,
			&photoURL,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}

		if monthlyTarget.Valid {
			vendor.MonthlyTarget = &monthlyTarget.Float64
		}
		if photoURL.Valid {
			vendor.PhotoURL = &photoURL.String
		}

		vendors = append(vendors, vendor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendors, nil
}
