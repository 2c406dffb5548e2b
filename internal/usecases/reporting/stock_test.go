package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

func TestAnalyzeStock(t *testing.T) {
	products := []*domain.Product{
		{ID: "P1", Name: "Gravata Slim Azul", Category: "Gravatas", UnitPrice: 89.90, CurrentStock: 10},
		{ID: "P2", Name: "Gravata Preta", Category: "Gravatas", UnitPrice: 89.90, CurrentStock: 3},
		{ID: "P3", Name: "Cinto de Couro", Category: "Cintos", UnitPrice: 119.90, CurrentStock: 8},
		{ID: "P4", Name: "Lenço Estampado", Category: "", UnitPrice: 49.90, CurrentStock: 0},
	}

	soldProducts := []*domain.ProductRankingEntry{
		{Name: "Gravata Slim Azul", Quantity: 5, TotalValue: 449.50},
	}

	analysis := AnalyzeStock(products, soldProducts, 5)

	assert.Equal(t, 4, analysis.ActiveProducts)
	assert.Equal(t, 21, analysis.TotalStockUnits)
	assert.InDelta(t, 2127.90, analysis.TotalStockValue, 0.001)

	// Estoque baixo: abaixo do limiar, incluindo estoque zerado
	assert.Equal(t, 2, analysis.LowStockCount)
	assert.Equal(t, "Gravata Preta", analysis.LowStockProducts[0].Name)
	assert.Equal(t, "Lenço Estampado", analysis.LowStockProducts[1].Name)

	// Sem giro: estoque positivo e nenhuma venda no mês. Estoque zerado não conta.
	assert.Equal(t, 2, analysis.NoTurnoverCount)
	assert.Equal(t, "Gravata Preta", analysis.NoTurnoverProducts[0].Name)
	assert.Equal(t, "Cinto de Couro", analysis.NoTurnoverProducts[1].Name)
}

func TestAnalyzeStock_Categorias(t *testing.T) {
	products := []*domain.Product{
		{ID: "P1", Name: "Gravata Slim Azul", Category: "Gravatas", UnitPrice: 89.90, CurrentStock: 10},
		{ID: "P2", Name: "Gravata Preta", Category: "Gravatas", UnitPrice: 89.90, CurrentStock: 4},
		{ID: "P3", Name: "Lenço Estampado", Category: "", UnitPrice: 49.90, CurrentStock: 6},
	}

	soldProducts := []*domain.ProductRankingEntry{
		{Name: "Gravata Slim Azul", Quantity: 2, TotalValue: 179.80},
	}

	analysis := AnalyzeStock(products, soldProducts, 5)

	assert.Len(t, analysis.Categories, 2)

	gravatas := analysis.Categories[0]
	assert.Equal(t, "Gravatas", gravatas.Category)
	assert.Equal(t, 2, gravatas.ProductCount)
	assert.Equal(t, 14, gravatas.StockUnits)
	assert.Equal(t, 2, gravatas.SoldQuantity)
	assert.InDelta(t, 179.80, gravatas.SoldValue, 0.001)

	// Categoria vazia cai em "Outros"
	outros := analysis.Categories[1]
	assert.Equal(t, "Outros", outros.Category)
	assert.Equal(t, 1, outros.ProductCount)
}

func TestAnalyzeStock_SemProdutos(t *testing.T) {
	analysis := AnalyzeStock(nil, nil, 5)

	assert.Equal(t, 0, analysis.ActiveProducts)
	assert.Empty(t, analysis.LowStockProducts)
	assert.Empty(t, analysis.NoTurnoverProducts)
	assert.Empty(t, analysis.Categories)
}
