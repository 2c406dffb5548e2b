package reporting

import (
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
	"github.com/vhgravatas/pos-analytics-api/pkg/utils"
)

// GrowthPercentage calcula o crescimento percentual entre dois períodos.
// Retorna 0 quando o período anterior é zero; nunca NaN ou infinito.
func GrowthPercentage(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// TargetAttainmentRate calcula o percentual de vendedores que atingiram a meta
// no período. Retorna 0 quando não há vendedores.
func TargetAttainmentRate(entries []*domain.VendorRankingEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	hit := 0
	for _, entry := range entries {
		if entry.TargetHit {
			hit++
		}
	}

	return utils.RoundWithTwoDecimalPlace(float64(hit) / float64(len(entries)) * 100)
}

// ComputeKPIPanel deriva os indicadores de desempenho do mês corrente
func ComputeKPIPanel(
	monthMetrics *domain.WindowMetrics,
	vendorRanking []*domain.VendorRankingEntry,
	growth float64,
	elapsedDays int,
	activeProducts int,
) *domain.KPIPanel {
	if elapsedDays < 1 {
		elapsedDays = 1
	}

	return &domain.KPIPanel{
		AverageTicket:        utils.RoundWithTwoDecimalPlace(monthMetrics.AverageTicket),
		SalesPerDay:          utils.RoundWithTwoDecimalPlace(float64(monthMetrics.SalesQuantity) / float64(elapsedDays)),
		RevenuePerDay:        utils.RoundWithTwoDecimalPlace(monthMetrics.TotalRevenue / float64(elapsedDays)),
		TargetAttainmentRate: TargetAttainmentRate(vendorRanking),
		GrowthPercentage:     growth,
		ActiveProducts:       activeProducts,
	}
}
