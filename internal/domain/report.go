package domain

import "time"

// TimeWindow é um intervalo [Start, End] ancorado no instante de referência
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains indica se o instante está dentro da janela
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ReportWindows agrupa as janelas de dia, semana e mês usadas nos relatórios
type ReportWindows struct {
	Day   TimeWindow `json:"day"`
	Week  TimeWindow `json:"week"`
	Month TimeWindow `json:"month"`
}

// PaymentBreakdownEntry é o total acumulado de uma forma de pagamento na janela
type PaymentBreakdownEntry struct {
	Mode       string  `json:"mode"`
	Amount     float64 `json:"amount"`
	SalesCount int     `json:"sales_count"`
	Share      float64 `json:"share"` // % do faturamento da janela
}

// WindowMetrics são as métricas de vendas de uma janela de tempo
type WindowMetrics struct {
	TotalRevenue     float64                  `json:"total_revenue"`
	SalesQuantity    int                      `json:"sales_quantity"`
	AverageTicket    float64                  `json:"average_ticket"`
	PaymentBreakdown []*PaymentBreakdownEntry `json:"payment_breakdown"`
}

// VendorRankingEntry é a posição de um vendedor no ranking por faturamento
type VendorRankingEntry struct {
	Name             string  `json:"name"`
	TotalAmount      float64 `json:"total_amount"`
	SalesQuantity    int     `json:"sales_quantity"`
	AverageTicket    float64 `json:"average_ticket"`
	Target           float64 `json:"target"`
	TargetAttainment float64 `json:"target_attainment"` // % da meta; 0 quando meta não definida
	TargetHit        bool    `json:"target_hit"`
}

// ProductRankingEntry é a posição de um produto no ranking por quantidade vendida
type ProductRankingEntry struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	TotalValue float64 `json:"total_value"`
}

// CategorySummary agrega produtos e vendas por categoria do catálogo
type CategorySummary struct {
	Category     string  `json:"category"`
	ProductCount int     `json:"product_count"`
	StockUnits   int     `json:"stock_units"`
	StockValue   float64 `json:"stock_value"`
	SoldQuantity int     `json:"sold_quantity"`
	SoldValue    float64 `json:"sold_value"`
}

// StockAnalysis são os indicadores de saúde do estoque
type StockAnalysis struct {
	ActiveProducts     int                `json:"active_products"`
	TotalStockUnits    int                `json:"total_stock_units"`
	LowStockCount      int                `json:"low_stock_count"`
	NoTurnoverCount    int                `json:"no_turnover_count"`
	TotalStockValue    float64            `json:"total_stock_value"`
	LowStockProducts   []*Product         `json:"low_stock_products"`
	NoTurnoverProducts []*Product         `json:"no_turnover_products"`
	Categories         []*CategorySummary `json:"categories"`
}

// CashSummary é o resumo das movimentações de caixa do período
type CashSummary struct {
	TotalInflow   float64         `json:"total_inflow"`
	TotalOutflow  float64         `json:"total_outflow"`
	NetBalance    float64         `json:"net_balance"`
	MovementCount int             `json:"movement_count"`
	Movements     []*CashMovement `json:"movements"`
}

// KPIPanel são os indicadores de desempenho derivados do mês corrente
type KPIPanel struct {
	AverageTicket        float64 `json:"average_ticket"`
	SalesPerDay          float64 `json:"sales_per_day"`
	RevenuePerDay        float64 `json:"revenue_per_day"`
	TargetAttainmentRate float64 `json:"target_attainment_rate"`
	GrowthPercentage     float64 `json:"growth_percentage"`
	ActiveProducts       int     `json:"active_products"`
}

// PendingSummary conta as vendas aguardando fechamento no caixa
type PendingSummary struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// ExecutiveSummary é o resumo executivo do relatório gerencial
type ExecutiveSummary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	SalesQuantity    int     `json:"sales_quantity"`
	AverageTicket    float64 `json:"average_ticket"`
	GrowthPercentage float64 `json:"growth_percentage"`
	VendorsOnTarget  int     `json:"vendors_on_target"`
	VendorCount      int     `json:"vendor_count"`
}

// ManagementReport é o relatório gerencial completo montado pelo compositor.
// Objeto de dados puro; a renderização fica a cargo de um colaborador externo.
type ManagementReport struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Windows ReportWindows     `json:"windows"`
	Summary *ExecutiveSummary `json:"summary"`

	DayMetrics   *WindowMetrics `json:"day_metrics"`
	WeekMetrics  *WindowMetrics `json:"week_metrics"`
	MonthMetrics *WindowMetrics `json:"month_metrics"`

	PreviousMonthRevenue float64 `json:"previous_month_revenue"`

	Categories        []*CategorySummary    `json:"categories"`
	VendorPerformance []*VendorRankingEntry `json:"vendor_performance"`
	TopVendors        []*VendorRankingEntry `json:"top_vendors"`
	TopProducts       []*ProductRankingEntry `json:"top_products"`

	Cash    *CashSummary    `json:"cash"`
	KPIs    *KPIPanel       `json:"kpis"`
	Stock   *StockAnalysis  `json:"stock"`
	Pending *PendingSummary `json:"pending"`

	Problems         []string `json:"problems"`
	ImmediateActions []string `json:"immediate_actions"`
	StrategicActions []string `json:"strategic_actions"`
}

// ReportSnapshot é um relatório persistido pelo agendador diário
type ReportSnapshot struct {
	ID            string            `json:"id"`
	ReferenceDate time.Time         `json:"reference_date"`
	Report        *ManagementReport `json:"report"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
