package reporting

import (
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

// ComputeWindowMetrics calcula faturamento, quantidade, ticket médio e a
// decomposição por forma de pagamento de um conjunto de vendas já filtrado
// para uma janela. Ticket médio é 0 quando não há vendas.
func ComputeWindowMetrics(sales []*domain.Sale) *domain.WindowMetrics {
	var totalRevenue float64
	accumulator := NewPaymentAccumulator()

	for _, sale := range sales {
		totalRevenue += sale.FinalAmount
		accumulator.Add(sale)
	}

	quantity := len(sales)

	averageTicket := 0.0
	if quantity > 0 {
		averageTicket = totalRevenue / float64(quantity)
	}

	return &domain.WindowMetrics{
		TotalRevenue:     totalRevenue,
		SalesQuantity:    quantity,
		AverageTicket:    averageTicket,
		PaymentBreakdown: accumulator.Entries(totalRevenue),
	}
}
