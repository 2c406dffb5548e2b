package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

func TestNormalizeMode(t *testing.T) {
	assert.Equal(t, "pix", NormalizeMode(" PIX "))
	assert.Equal(t, "dinheiro", NormalizeMode("Dinheiro"))
	assert.Equal(t, "outros", NormalizeMode(""))
	assert.Equal(t, "outros", NormalizeMode("   "))
}

func TestSplitPayment(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		finalAmount float64
		expected    map[string]float64
	}{
		{
			name:        "Forma simples recebe o valor integral da venda",
			mode:        "pix",
			finalAmount: 150.0,
			expected:    map[string]float64{"pix": 150.0},
		},
		{
			name:        "Forma composta divide pelos valores declarados",
			mode:        "dinheiro:20.00|pix:30.00",
			finalAmount: 50.0,
			expected:    map[string]float64{"dinheiro": 20.0, "pix": 30.0},
		},
		{
			name:        "Segmento com valor inválido contribui zero",
			mode:        "dinheiro:abc|pix:30.00",
			finalAmount: 50.0,
			expected:    map[string]float64{"dinheiro": 0.0, "pix": 30.0},
		},
		{
			name:        "Token repetido acumula os segmentos",
			mode:        "pix:10.00|pix:15.00",
			finalAmount: 25.0,
			expected:    map[string]float64{"pix": 25.0},
		},
		{
			name:        "Forma vazia cai no token de fallback",
			mode:        "",
			finalAmount: 80.0,
			expected:    map[string]float64{"outros": 80.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitPayment(tt.mode, tt.finalAmount)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPaymentAccumulator(t *testing.T) {
	accumulator := NewPaymentAccumulator()

	accumulator.Add(&domain.Sale{
		SaleRecord: domain.SaleRecord{PaymentMode: "pix", FinalAmount: 100.0},
	})
	accumulator.Add(&domain.Sale{
		SaleRecord: domain.SaleRecord{PaymentMode: "dinheiro:20.00|pix:30.00", FinalAmount: 50.0},
	})

	entries := accumulator.Entries(150.0)

	// Ordem de primeira aparição: pix primeiro, dinheiro depois
	assert.Len(t, entries, 2)

	assert.Equal(t, "pix", entries[0].Mode)
	assert.Equal(t, 130.0, entries[0].Amount)
	assert.Equal(t, 2, entries[0].SalesCount)
	assert.Equal(t, 86.67, entries[0].Share)

	assert.Equal(t, "dinheiro", entries[1].Mode)
	assert.Equal(t, 20.0, entries[1].Amount)
	assert.Equal(t, 1, entries[1].SalesCount)
	assert.Equal(t, 13.33, entries[1].Share)
}

func TestPaymentAccumulator_VendaContaUmaVezPorToken(t *testing.T) {
	accumulator := NewPaymentAccumulator()

	// Token repetido na mesma venda conta a venda uma única vez
	accumulator.Add(&domain.Sale{
		SaleRecord: domain.SaleRecord{PaymentMode: "pix:10.00|pix:15.00", FinalAmount: 25.0},
	})

	entries := accumulator.Entries(25.0)

	assert.Len(t, entries, 1)
	assert.Equal(t, "pix", entries[0].Mode)
	assert.Equal(t, 25.0, entries[0].Amount)
	assert.Equal(t, 1, entries[0].SalesCount)
}

func TestPaymentAccumulator_FaturamentoZero(t *testing.T) {
	accumulator := NewPaymentAccumulator()
	accumulator.Add(&domain.Sale{
		SaleRecord: domain.SaleRecord{PaymentMode: "pix", FinalAmount: 0},
	})

	entries := accumulator.Entries(0)

	assert.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Share)
}
