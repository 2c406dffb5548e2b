package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
	"github.com/vhgravatas/pos-analytics-api/pkg/utils"
)

const (
	// DefaultLowStockThreshold marca produtos que precisam de reposição
	DefaultLowStockThreshold = 5
	// DefaultTopVendorsLimit é o tamanho do painel de destaque de vendedores
	DefaultTopVendorsLimit = 3
	// DefaultTopProductsLimit é o tamanho do painel de produtos mais vendidos
	DefaultTopProductsLimit = 10

	// promotedProductsLimit limita os produtos parados citados no plano de ação
	promotedProductsLimit = 3
)

// Options parametriza os limiares do compositor de relatórios
type Options struct {
	LowStockThreshold int
	TopVendorsLimit   int
	TopProductsLimit  int
}

// ReportInputs é o conjunto completo de coleções necessário para uma rodada de
// agregação. Todas as coleções são de propriedade externa e somente leitura.
type ReportInputs struct {
	Sales     []*domain.SaleRecord
	Items     []*domain.SaleItem
	Vendors   []*domain.Vendor
	Products  []*domain.Product
	Movements []*domain.CashMovement
}

// Aggregator compõe o relatório gerencial a partir das coleções brutas. Toda a
// agregação é síncrona, pura e sem estado escondido: cada rodada produz um
// relatório novo e independente.
type Aggregator struct {
	opts     Options
	currency CurrencyFormatter
}

func NewAggregator(opts Options, currency CurrencyFormatter) *Aggregator {
	if opts.LowStockThreshold <= 0 {
		opts.LowStockThreshold = DefaultLowStockThreshold
	}
	if opts.TopVendorsLimit <= 0 {
		opts.TopVendorsLimit = DefaultTopVendorsLimit
	}
	if opts.TopProductsLimit <= 0 {
		opts.TopProductsLimit = DefaultTopProductsLimit
	}

	return &Aggregator{opts: opts, currency: currency}
}

// Aggregate monta o relatório gerencial completo ancorado no instante de
// referência informado pelo chamador.
func (a *Aggregator) Aggregate(inputs *ReportInputs, now time.Time) *domain.ManagementReport {
	windows := ResolveWindows(now)
	previousMonth := PreviousMonthWindow(now)

	normalized := NormalizeSales(inputs.Sales, inputs.Items)
	pending := CountPending(normalized)
	settled := FilterSettled(normalized)

	daySales := FilterByWindow(settled, windows.Day)
	weekSales := FilterByWindow(settled, windows.Week)
	monthSales := FilterByWindow(settled, windows.Month)
	previousMonthSales := FilterByWindow(settled, previousMonth)

	dayMetrics := ComputeWindowMetrics(daySales)
	weekMetrics := ComputeWindowMetrics(weekSales)
	monthMetrics := ComputeWindowMetrics(monthSales)

	var previousRevenue float64
	for _, sale := range previousMonthSales {
		previousRevenue += sale.FinalAmount
	}

	growth := GrowthPercentage(monthMetrics.TotalRevenue, previousRevenue)

	vendorRanking := RankVendors(monthSales, inputs.Vendors)
	productRanking := RankProducts(monthSales)

	stock := AnalyzeStock(inputs.Products, productRanking, a.opts.LowStockThreshold)
	cash := SummarizeCashMovements(inputs.Movements)

	kpis := ComputeKPIPanel(
		monthMetrics,
		vendorRanking,
		growth,
		ElapsedDaysInMonth(now),
		stock.ActiveProducts,
	)

	vendorsOnTarget := 0
	for _, entry := range vendorRanking {
		if entry.TargetHit {
			vendorsOnTarget++
		}
	}

	report := &domain.ManagementReport{
		ReportID:    a.reportID(),
		GeneratedAt: now,
		Windows:     windows,
		Summary: &domain.ExecutiveSummary{
			TotalRevenue:     monthMetrics.TotalRevenue,
			SalesQuantity:    monthMetrics.SalesQuantity,
			AverageTicket:    utils.RoundWithTwoDecimalPlace(monthMetrics.AverageTicket),
			GrowthPercentage: growth,
			VendorsOnTarget:  vendorsOnTarget,
			VendorCount:      len(vendorRanking),
		},
		DayMetrics:           dayMetrics,
		WeekMetrics:          weekMetrics,
		MonthMetrics:         monthMetrics,
		PreviousMonthRevenue: previousRevenue,
		Categories:           stock.Categories,
		VendorPerformance:    vendorRanking,
		TopVendors:           TopVendors(vendorRanking, a.opts.TopVendorsLimit),
		TopProducts:          TopProducts(productRanking, a.opts.TopProductsLimit),
		Cash:                 cash,
		KPIs:                 kpis,
		Stock:                stock,
		Pending:              pending,
	}

	report.Problems = a.identifyProblems(report)
	report.ImmediateActions, report.StrategicActions = a.buildActionPlan(report)

	return report
}

// identifyProblems aplica as regras fixas de limiar sobre as métricas já
// computadas. Nenhuma entrada externa além do próprio relatório.
func (a *Aggregator) identifyProblems(report *domain.ManagementReport) []string {
	problems := make([]string, 0)

	if report.Stock.NoTurnoverCount > 0 {
		problems = append(problems, fmt.Sprintf(
			"%d produtos não venderam no mês", report.Stock.NoTurnoverCount,
		))
	}

	if report.Stock.LowStockCount > 0 {
		problems = append(problems, fmt.Sprintf(
			"%d produtos precisam de reposição", report.Stock.LowStockCount,
		))
	}

	belowTarget := len(report.VendorPerformance) - report.Summary.VendorsOnTarget
	if belowTarget > 0 {
		problems = append(problems, fmt.Sprintf(
			"%d vendedores não atingiram a meta", belowTarget,
		))
	}

	if report.Pending.Count > 0 {
		problems = append(problems, fmt.Sprintf(
			"%d vendas aguardando pagamento (%s)",
			report.Pending.Count, a.formatAmount(report.Pending.Amount),
		))
	}

	return problems
}

// buildActionPlan deriva as ações imediatas e estratégicas recomendadas
func (a *Aggregator) buildActionPlan(report *domain.ManagementReport) (immediate, strategic []string) {
	immediate = make([]string, 0)

	if report.Stock.LowStockCount > 0 {
		immediate = append(immediate, fmt.Sprintf(
			"Repor %d produtos com estoque baixo", report.Stock.LowStockCount,
		))
	}

	belowTarget := len(report.VendorPerformance) - report.Summary.VendorsOnTarget
	if belowTarget > 0 {
		immediate = append(immediate, fmt.Sprintf(
			"Treinar %d vendedores que não atingiram a meta", belowTarget,
		))
	}

	if len(report.Stock.NoTurnoverProducts) > 0 {
		names := make([]string, 0, promotedProductsLimit)
		for _, product := range report.Stock.NoTurnoverProducts {
			names = append(names, product.Name)
			if len(names) == promotedProductsLimit {
				break
			}
		}
		immediate = append(immediate, fmt.Sprintf(
			"Promover %s (produtos parados)", strings.Join(names, ", "),
		))
	}

	if report.Pending.Count > 0 {
		immediate = append(immediate, fmt.Sprintf(
			"Finalizar %d vendas pendentes", report.Pending.Count,
		))
	}

	strategic = make([]string, 0, 3)
	if report.Summary.GrowthPercentage < 0 {
		strategic = append(strategic, "Implementar estratégias para reverter a queda nas vendas")
	} else {
		strategic = append(strategic, "Manter estratégias que geraram crescimento")
	}
	strategic = append(strategic,
		"Focar nas categorias com melhor performance",
		"Ajustar metas com base na performance atual",
	)

	return immediate, strategic
}

func (a *Aggregator) formatAmount(amount float64) string {
	if a.currency == nil {
		return fmt.Sprintf("R$ %.2f", amount)
	}
	return a.currency.Format(amount)
}

func (a *Aggregator) reportID() string {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador do relatório")
		return ""
	}
	return id
}
