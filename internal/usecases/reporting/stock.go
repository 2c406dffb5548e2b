package reporting

import (
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

// AnalyzeStock calcula os indicadores de saúde do estoque a partir do catálogo
// completo e da lista de produtos vendidos no mês corrente. O cruzamento entre
// catálogo e vendas é feito por nome de produto (melhor esforço; divergência de
// nome nunca é erro).
func AnalyzeStock(
	products []*domain.Product,
	soldProducts []*domain.ProductRankingEntry,
	lowStockThreshold int,
) *domain.StockAnalysis {
	soldByName := make(map[string]*domain.ProductRankingEntry, len(soldProducts))
	for _, sold := range soldProducts {
		soldByName[sold.Name] = sold
	}

	analysis := &domain.StockAnalysis{
		LowStockProducts:   make([]*domain.Product, 0),
		NoTurnoverProducts: make([]*domain.Product, 0),
		Categories:         make([]*domain.CategorySummary, 0),
	}

	categoryOrder := make([]string, 0)
	categories := make(map[string]*domain.CategorySummary)

	for _, product := range products {
		if product == nil {
			continue
		}

		analysis.ActiveProducts++
		analysis.TotalStockUnits += product.CurrentStock
		analysis.TotalStockValue += product.StockValue()

		if product.CurrentStock < lowStockThreshold {
			analysis.LowStockCount++
			analysis.LowStockProducts = append(analysis.LowStockProducts, product)
		}

		sold := soldByName[product.Name]

		// Sem giro: estoque positivo e nenhuma venda no mês
		if sold == nil && product.CurrentStock > 0 {
			analysis.NoTurnoverCount++
			analysis.NoTurnoverProducts = append(analysis.NoTurnoverProducts, product)
		}

		category := product.Category
		if category == "" {
			category = "Outros"
		}

		summary, exists := categories[category]
		if !exists {
			summary = &domain.CategorySummary{Category: category}
			categories[category] = summary
			categoryOrder = append(categoryOrder, category)
		}

		summary.ProductCount++
		summary.StockUnits += product.CurrentStock
		summary.StockValue += product.StockValue()

		if sold != nil {
			summary.SoldQuantity += sold.Quantity
			summary.SoldValue += sold.TotalValue
		}
	}

	for _, category := range categoryOrder {
		analysis.Categories = append(analysis.Categories, categories[category])
	}

	return analysis
}
