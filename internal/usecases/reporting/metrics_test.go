package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

func TestComputeWindowMetrics(t *testing.T) {
	sales := []*domain.Sale{
		{SaleRecord: domain.SaleRecord{FinalAmount: 100.0, PaymentMode: "pix"}},
		{SaleRecord: domain.SaleRecord{FinalAmount: 50.0, PaymentMode: "dinheiro:20.00|pix:30.00"}},
	}

	metrics := ComputeWindowMetrics(sales)

	assert.Equal(t, 150.0, metrics.TotalRevenue)
	assert.Equal(t, 2, metrics.SalesQuantity)
	assert.Equal(t, 75.0, metrics.AverageTicket)

	assert.Len(t, metrics.PaymentBreakdown, 2)
	assert.Equal(t, "pix", metrics.PaymentBreakdown[0].Mode)
	assert.Equal(t, 130.0, metrics.PaymentBreakdown[0].Amount)
	assert.Equal(t, "dinheiro", metrics.PaymentBreakdown[1].Mode)
	assert.Equal(t, 20.0, metrics.PaymentBreakdown[1].Amount)
}

func TestComputeWindowMetrics_SemVendas(t *testing.T) {
	metrics := ComputeWindowMetrics(nil)

	// Ticket médio é 0 quando não há vendas, nunca NaN
	assert.Equal(t, 0.0, metrics.TotalRevenue)
	assert.Equal(t, 0, metrics.SalesQuantity)
	assert.Equal(t, 0.0, metrics.AverageTicket)
	assert.Empty(t, metrics.PaymentBreakdown)
}
