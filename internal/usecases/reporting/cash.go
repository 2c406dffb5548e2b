package reporting

import (
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

// SummarizeCashMovements totaliza entradas, saídas e saldo líquido das
// movimentações de caixa. Tipos desconhecidos são ignorados nos totais mas
// contam como movimentação.
func SummarizeCashMovements(movements []*domain.CashMovement) *domain.CashSummary {
	summary := &domain.CashSummary{
		Movements: movements,
	}

	for _, movement := range movements {
		if movement == nil {
			continue
		}

		summary.MovementCount++

		switch movement.Kind {
		case domain.CashMovementInflow:
			summary.TotalInflow += movement.Amount
		case domain.CashMovementOutflow:
			summary.TotalOutflow += movement.Amount
		}
	}

	summary.NetBalance = summary.TotalInflow - summary.TotalOutflow

	return summary
}
