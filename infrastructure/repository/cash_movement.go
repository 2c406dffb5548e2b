package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/vhgravatas/pos-analytics-api/infrastructure/database/postgres"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

const (
	cashMovementsTable = "cash_movements cm"
	cashOutflowsTable  = "cash_outflows co"
)

type CashMovementRepository interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.CashMovement, error)
}

type cashMovementRepository struct {
	conn *postgres.Connection
}

func NewCashMovementRepository(conn *postgres.Connection) CashMovementRepository {
	return &cashMovementRepository{
		conn: conn,
	}
}

// ListRecent retorna as movimentações mais recentes combinando entradas e
// saídas, que vivem em tabelas separadas. As duas coleções são mescladas em
// memória, ordenadas da mais recente para a mais antiga e truncadas no limite.
func (r *cashMovementRepository) ListRecent(ctx context.Context, limit int) ([]*domain.CashMovement, error) {
	inflows, err := r.listKind(ctx, cashMovementsTable, domain.CashMovementInflow, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar entradas de caixa: %w", err)
	}

	outflows, err := r.listKind(ctx, cashOutflowsTable, domain.CashMovementOutflow, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar saídas de caixa: %w", err)
	}

	movements := make([]*domain.CashMovement, 0, len(inflows)+len(outflows))
	movements = append(movements, inflows...)
	movements = append(movements, outflows...)

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].CreatedAt.After(movements[j].CreatedAt)
	})

	if limit > 0 && len(movements) > limit {
		movements = movements[:limit]
	}

	return movements, nil
}

func (r *cashMovementRepository) listKind(ctx context.Context, table, kind string, limit int) ([]*domain.CashMovement, error) {
	alias := table[len(table)-2:]

	builder := squirrel.
		Select(fmt.Sprintf("%s.id, %s.amount, %s.description, %s.operator_id, %s.created_at", alias, alias, alias, alias, alias)).
		From(table).
		OrderBy(fmt.Sprintf("%s.created_at DESC", alias)).
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
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

	movements := make([]*domain.CashMovement, 0)
	for rows.Next() {
		movement := &domain.CashMovement{Kind: kind}
		var description sql.NullString
		var operatorID sql.NullString

		err := rows.Scan(
			&movement.ID,
			&movement.Amount,
			&description,
			&operatorID,
			&movement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear movimentação: %w", err)
		}

		movement.Description = description.String
		movement.OperatorID = operatorID.String

		movements = append(movements, movement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return movements, nil
}
