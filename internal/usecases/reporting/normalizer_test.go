package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

func TestNormalizeSales(t *testing.T) {
	records := []*domain.SaleRecord{
		{ID: "V1", Status: domain.SaleStatusActive},
		{ID: "V2", Status: domain.SaleStatusCancelled},
		{ID: "V3", Status: domain.SaleStatusActive},
		nil,
	}

	items := []*domain.SaleItem{
		{ID: "I1", SaleID: "V1", ProductName: "Gravata Slim Azul", Quantity: 2, Subtotal: 179.80},
		{ID: "I2", SaleID: "V1", ProductName: "Cinto de Couro", Quantity: 1, Subtotal: 119.90},
		{ID: "I3", SaleID: "V2", ProductName: "Gravata Vinho", Quantity: 1, Subtotal: 79.90},
	}

	sales := NormalizeSales(records, items)

	// Venda cancelada e registro nulo são descartados
	assert.Len(t, sales, 2)

	assert.Equal(t, "V1", sales[0].ID)
	assert.Len(t, sales[0].Items, 2)

	// Venda sem itens recebe lista vazia, nunca nil
	assert.Equal(t, "V3", sales[1].ID)
	assert.NotNil(t, sales[1].Items)
	assert.Empty(t, sales[1].Items)
}

func TestFilterSettled(t *testing.T) {
	sales := []*domain.Sale{
		{SaleRecord: domain.SaleRecord{ID: "V1", PaymentMode: "pix"}},
		{SaleRecord: domain.SaleRecord{ID: "V2", PaymentMode: domain.PaymentModePending}},
		{SaleRecord: domain.SaleRecord{ID: "V3", PaymentMode: "dinheiro"}},
	}

	settled := FilterSettled(sales)

	assert.Len(t, settled, 2)
	assert.Equal(t, "V1", settled[0].ID)
	assert.Equal(t, "V3", settled[1].ID)
}

func TestCountPending(t *testing.T) {
	sales := []*domain.Sale{
		{SaleRecord: domain.SaleRecord{ID: "V1", PaymentMode: "pix", FinalAmount: 100}},
		{SaleRecord: domain.SaleRecord{ID: "V2", PaymentMode: domain.PaymentModePending, FinalAmount: 250}},
		{SaleRecord: domain.SaleRecord{ID: "V3", PaymentMode: domain.PaymentModePending, FinalAmount: 80}},
	}

	pending := CountPending(sales)

	assert.Equal(t, 2, pending.Count)
	assert.Equal(t, 330.0, pending.Amount)
}

func TestFilterByWindow(t *testing.T) {
	window := domain.TimeWindow{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		End:   time.Date(2025, 1, 31, 23, 59, 59, 0, time.Local),
	}

	sales := []*domain.Sale{
		// Dentro da janela pela data de negócio
		{SaleRecord: domain.SaleRecord{
			ID:           "V1",
			BusinessDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local),
		}},
		// Fora da janela
		{SaleRecord: domain.SaleRecord{
			ID:           "V2",
			BusinessDate: time.Date(2024, 12, 20, 0, 0, 0, 0, time.Local),
		}},
		// Sem data de negócio, usa a data de criação
		{SaleRecord: domain.SaleRecord{
			ID:        "V3",
			CreatedAt: time.Date(2025, 1, 10, 14, 0, 0, 0, time.Local),
		}},
		// Sem nenhuma data válida, excluída sem abortar o lote
		{SaleRecord: domain.SaleRecord{ID: "V4"}},
	}

	filtered := FilterByWindow(sales, window)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "V1", filtered[0].ID)
	assert.Equal(t, "V3", filtered[1].ID)
}

func TestFilterByWindow_LimitesInclusivos(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)
	window := domain.TimeWindow{Start: start, End: end}

	sales := []*domain.Sale{
		{SaleRecord: domain.SaleRecord{ID: "V1", BusinessDate: start}},
		{SaleRecord: domain.SaleRecord{ID: "V2", BusinessDate: end}},
	}

	filtered := FilterByWindow(sales, window)

	// Janela fechada nas duas pontas
	assert.Len(t, filtered, 2)
}
