package domain

// Product representa um produto do catálogo com seu estoque atual
type Product struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unit_price"`
	CurrentStock int     `json:"current_stock"`
}

// StockValue é o valor imobilizado em estoque deste produto
func (p *Product) StockValue() float64 {
	return float64(p.CurrentStock) * p.UnitPrice
}
