package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

func TestGrowthPercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{"Crescimento positivo", 1200.0, 1000.0, 20.0},
		{"Queda nas vendas", 800.0, 1000.0, -20.0},
		{"Período anterior zerado retorna zero", 500.0, 0.0, 0.0},
		{"Ambos zerados retorna zero", 0.0, 0.0, 0.0},
		{"Arredondamento em duas casas", 1000.0, 300.0, 233.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GrowthPercentage(tt.current, tt.previous))
		})
	}
}

func TestTargetAttainmentRate(t *testing.T) {
	entries := []*domain.VendorRankingEntry{
		{Name: "Ana", TargetHit: true},
		{Name: "Carlos", TargetHit: false},
		{Name: "Fernanda", TargetHit: true},
	}

	assert.Equal(t, 66.67, TargetAttainmentRate(entries))
	assert.Equal(t, 0.0, TargetAttainmentRate(nil))
}

func TestComputeKPIPanel(t *testing.T) {
	monthMetrics := &domain.WindowMetrics{
		TotalRevenue:  3000.0,
		SalesQuantity: 30,
		AverageTicket: 100.0,
	}

	ranking := []*domain.VendorRankingEntry{
		{Name: "Ana", TargetHit: true},
		{Name: "Carlos", TargetHit: false},
	}

	panel := ComputeKPIPanel(monthMetrics, ranking, 15.5, 15, 42)

	assert.Equal(t, 100.0, panel.AverageTicket)
	assert.Equal(t, 2.0, panel.SalesPerDay)
	assert.Equal(t, 200.0, panel.RevenuePerDay)
	assert.Equal(t, 50.0, panel.TargetAttainmentRate)
	assert.Equal(t, 15.5, panel.GrowthPercentage)
	assert.Equal(t, 42, panel.ActiveProducts)
}

func TestComputeKPIPanel_PrimeiroDiaDoMes(t *testing.T) {
	monthMetrics := &domain.WindowMetrics{TotalRevenue: 500.0, SalesQuantity: 5}

	// Divisor mínimo de 1 nas médias diárias
	panel := ComputeKPIPanel(monthMetrics, nil, 0, 0, 0)

	assert.Equal(t, 5.0, panel.SalesPerDay)
	assert.Equal(t, 500.0, panel.RevenuePerDay)
}
