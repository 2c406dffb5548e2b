package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

func buildReportInputs() *ReportInputs {
	createdAt := func(day, hour int) time.Time {
		return time.Date(2025, time.March, day, hour, 0, 0, 0, time.Local)
	}

	return &ReportInputs{
		Sales: []*domain.SaleRecord{
			{
				ID: "V1", SaleNumber: "0001", CreatedAt: createdAt(15, 10),
				VendorName: "Ana", FinalAmount: 100.0, PaymentMode: "pix",
				Status: domain.SaleStatusActive,
			},
			{
				ID: "V2", SaleNumber: "0002", CreatedAt: createdAt(15, 11),
				VendorName: "Carlos", FinalAmount: 50.0, PaymentMode: "dinheiro:20.00|pix:30.00",
				Status: domain.SaleStatusActive,
			},
			{
				ID: "V3", SaleNumber: "0003", CreatedAt: createdAt(15, 12),
				VendorName: "Ana", FinalAmount: 200.0, PaymentMode: "pix",
				Status: domain.SaleStatusCancelled,
			},
			{
				ID: "V4", SaleNumber: "0004", CreatedAt: createdAt(15, 13),
				VendorName: "Carlos", FinalAmount: 80.0, PaymentMode: domain.PaymentModePending,
				Status: domain.SaleStatusActive,
			},
			{
				ID: "V5", SaleNumber: "0005", CreatedAt: time.Date(2025, time.February, 10, 14, 0, 0, 0, time.Local),
				VendorName: "Ana", FinalAmount: 100.0, PaymentMode: "pix",
				Status: domain.SaleStatusActive,
			},
		},
		Items: []*domain.SaleItem{
			{ID: "I1", SaleID: "V1", ProductName: "Gravata Slim Azul", Quantity: 1, Subtotal: 100.0},
			{ID: "I2", SaleID: "V2", ProductName: "Cinto de Couro", Quantity: 1, Subtotal: 50.0},
		},
		Vendors: []*domain.Vendor{
			{ID: "F1", Name: "Ana", MonthlyTarget: floatPtr(100.0)},
			{ID: "F2", Name: "Carlos", MonthlyTarget: floatPtr(500.0)},
		},
		Products: []*domain.Product{
			{ID: "P1", Code: "GRV-001", Name: "Gravata Slim Azul", Category: "Gravatas", UnitPrice: 89.90, CurrentStock: 10},
			{ID: "P2", Code: "CIN-001", Name: "Cinto de Couro", Category: "Cintos", UnitPrice: 119.90, CurrentStock: 8},
			{ID: "P3", Code: "LEN-001", Name: "Lenço Estampado", Category: "Lenços", UnitPrice: 49.90, CurrentStock: 2},
		},
		Movements: []*domain.CashMovement{
			{ID: "M1", Kind: domain.CashMovementInflow, Amount: 300.0, CreatedAt: createdAt(15, 9)},
			{ID: "M2", Kind: domain.CashMovementOutflow, Amount: 120.0, Description: "Compra de embalagens", CreatedAt: createdAt(15, 16)},
		},
	}
}

func TestAggregate(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 0, 0, 0, time.Local)
	aggregator := NewAggregator(Options{}, nil)

	report := aggregator.Aggregate(buildReportInputs(), now)

	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), report.Windows.Month.Start)

	// Resumo executivo: venda cancelada e pendente ficam de fora
	assert.Equal(t, 150.0, report.Summary.TotalRevenue)
	assert.Equal(t, 2, report.Summary.SalesQuantity)
	assert.Equal(t, 75.0, report.Summary.AverageTicket)
	assert.Equal(t, 50.0, report.Summary.GrowthPercentage)
	assert.Equal(t, 1, report.Summary.VendorsOnTarget)
	assert.Equal(t, 2, report.Summary.VendorCount)

	assert.Equal(t, 150.0, report.DayMetrics.TotalRevenue)
	assert.Equal(t, 150.0, report.WeekMetrics.TotalRevenue)
	assert.Equal(t, 100.0, report.PreviousMonthRevenue)

	// Pagamento composto repartido por modalidade
	assert.Len(t, report.MonthMetrics.PaymentBreakdown, 2)
	assert.Equal(t, "pix", report.MonthMetrics.PaymentBreakdown[0].Mode)
	assert.Equal(t, 130.0, report.MonthMetrics.PaymentBreakdown[0].Amount)
	assert.Equal(t, "dinheiro", report.MonthMetrics.PaymentBreakdown[1].Mode)
	assert.Equal(t, 20.0, report.MonthMetrics.PaymentBreakdown[1].Amount)

	assert.Equal(t, "Ana", report.VendorPerformance[0].Name)
	assert.True(t, report.VendorPerformance[0].TargetHit)
	assert.Equal(t, "Carlos", report.VendorPerformance[1].Name)
	assert.False(t, report.VendorPerformance[1].TargetHit)
	assert.Len(t, report.TopVendors, 2)

	assert.Len(t, report.TopProducts, 2)
	assert.Equal(t, "Gravata Slim Azul", report.TopProducts[0].Name)

	assert.Equal(t, 300.0, report.Cash.TotalInflow)
	assert.Equal(t, 120.0, report.Cash.TotalOutflow)
	assert.Equal(t, 180.0, report.Cash.NetBalance)

	assert.Equal(t, 75.0, report.KPIs.AverageTicket)
	assert.Equal(t, 0.13, report.KPIs.SalesPerDay)
	assert.Equal(t, 10.0, report.KPIs.RevenuePerDay)
	assert.Equal(t, 50.0, report.KPIs.TargetAttainmentRate)
	assert.Equal(t, 3, report.KPIs.ActiveProducts)

	assert.Equal(t, 1, report.Stock.LowStockCount)
	assert.Equal(t, "Lenço Estampado", report.Stock.LowStockProducts[0].Name)
	assert.Equal(t, 1, report.Stock.NoTurnoverCount)

	assert.Equal(t, 1, report.Pending.Count)
	assert.Equal(t, 80.0, report.Pending.Amount)
}

func TestAggregate_ProblemasEPlanoDeAcao(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 0, 0, 0, time.Local)
	aggregator := NewAggregator(Options{}, nil)

	report := aggregator.Aggregate(buildReportInputs(), now)

	assert.Equal(t, []string{
		"1 produtos não venderam no mês",
		"1 produtos precisam de reposição",
		"1 vendedores não atingiram a meta",
		"1 vendas aguardando pagamento (R$ 80.00)",
	}, report.Problems)

	assert.Equal(t, []string{
		"Repor 1 produtos com estoque baixo",
		"Treinar 1 vendedores que não atingiram a meta",
		"Promover Lenço Estampado (produtos parados)",
		"Finalizar 1 vendas pendentes",
	}, report.ImmediateActions)

	assert.Len(t, report.StrategicActions, 3)
	assert.Equal(t, "Manter estratégias que geraram crescimento", report.StrategicActions[0])
}

func TestAggregate_SemDados(t *testing.T) {
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.Local)
	aggregator := NewAggregator(Options{}, nil)

	report := aggregator.Aggregate(&ReportInputs{}, now)

	assert.Equal(t, 0.0, report.Summary.TotalRevenue)
	assert.Equal(t, 0, report.Summary.SalesQuantity)
	assert.Equal(t, 0.0, report.Summary.GrowthPercentage)
	assert.Empty(t, report.VendorPerformance)
	assert.Empty(t, report.Problems)
	assert.Len(t, report.StrategicActions, 3)
}
