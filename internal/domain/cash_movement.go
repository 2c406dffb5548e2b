package domain

import "time"

const (
	// CashMovementInflow é uma entrada de caixa
	CashMovementInflow = "entrada"
	// CashMovementOutflow é uma saída de caixa. Saídas carregam operador e
	// descrição não vazia (garantido na origem)
	CashMovementOutflow = "saida"
)

// CashMovement representa uma movimentação de caixa (entrada ou saída)
type CashMovement struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	OperatorID  string    `json:"operator_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
