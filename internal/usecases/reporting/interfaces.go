package reporting

import (
	"context"

	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

// Reporter define a interface do motor de agregação de métricas de vendas
type Reporter interface {
	// GenerateManagementReport monta o relatório gerencial completo
	GenerateManagementReport(ctx context.Context) (*domain.ManagementReport, error)

	// GetWindowMetrics calcula as métricas das janelas de dia, semana e mês
	GetWindowMetrics(ctx context.Context) (*WindowMetricsResponse, error)

	// GetVendorRanking monta o ranking completo de vendedores do mês corrente
	GetVendorRanking(ctx context.Context) ([]*domain.VendorRankingEntry, error)

	// GetProductRanking monta o ranking dos produtos mais vendidos do mês corrente
	GetProductRanking(ctx context.Context) ([]*domain.ProductRankingEntry, error)

	// GetStockAnalysis calcula os indicadores de saúde do estoque
	GetStockAnalysis(ctx context.Context) (*domain.StockAnalysis, error)
}

// ReportRenderer é o colaborador externo que recebe o relatório composto
// (ex.: renderizador HTML para impressão). O motor nunca renderiza.
type ReportRenderer interface {
	Render(report *domain.ManagementReport) error
}

// CurrencyFormatter é o colaborador de formatação monetária para as linhas de
// texto do relatório
type CurrencyFormatter interface {
	Format(amount float64) string
}

// WindowMetricsResponse agrupa as métricas por janela com a tabulação de
// vendas pendentes
type WindowMetricsResponse struct {
	Windows domain.ReportWindows   `json:"windows"`
	Day     *domain.WindowMetrics  `json:"day"`
	Week    *domain.WindowMetrics  `json:"week"`
	Month   *domain.WindowMetrics  `json:"month"`
	Pending *domain.PendingSummary `json:"pending"`
}
