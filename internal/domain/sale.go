// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

const (
	// SaleStatusActive indica uma venda válida para faturamento
	SaleStatusActive = "ativa"
	// SaleStatusCancelled indica uma venda cancelada, ignorada em qualquer métrica
	SaleStatusCancelled = "cancelada"

	// PaymentModePending é o sentinela de venda aguardando fechamento no caixa.
	// Vendas nesse estado nunca entram em faturamento, rankings ou KPIs.
	PaymentModePending = "pendente_caixa"
)

// SaleRecord é o registro bruto de venda como vem da loja de dados.
// Somente leitura para o motor de agregação.
type SaleRecord struct {
	ID           string    `json:"id"`
	SaleNumber   string    `json:"sale_number"`
	CreatedAt    time.Time `json:"created_at"`
	BusinessDate time.Time `json:"business_date"` // zero value = data não parseável
	CustomerName string    `json:"customer_name,omitempty"`
	VendorName   string    `json:"vendor_name,omitempty"`
	FinalAmount  float64   `json:"final_amount"`
	PaymentMode  string    `json:"payment_mode"`
	Status       string    `json:"status"`
}

// SaleItem pertence a exatamente um SaleRecord (relação por chave estrangeira;
// a associação é reconstituída em memória pelo normalizador)
type SaleItem struct {
	ID          string  `json:"id"`
	SaleID      string  `json:"sale_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// Sale é uma venda normalizada com seus itens anexados
type Sale struct {
	SaleRecord
	Items []*SaleItem `json:"items"`
}

// IsCancelled indica se a venda foi cancelada
func (s *SaleRecord) IsCancelled() bool {
	return s.Status == SaleStatusCancelled
}

// IsPending indica se a venda está aguardando fechamento no caixa
func (s *SaleRecord) IsPending() bool {
	return s.PaymentMode == PaymentModePending
}
