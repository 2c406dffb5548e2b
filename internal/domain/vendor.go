package domain

// Vendor representa um vendedor da loja. Meta mensal e foto são opcionais;
// quando ausentes valem seus zero values, nunca erro.
type Vendor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	MonthlyTarget *float64 `json:"monthly_target,omitempty"`
	PhotoURL      *string  `json:"photo_url,omitempty"`
}

// TargetAmount retorna a meta mensal do vendedor ou 0 quando não definida
func (v *Vendor) TargetAmount() float64 {
	if v.MonthlyTarget == nil {
		return 0
	}
	return *v.MonthlyTarget
}
