package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

// NormalizeSales associa os itens às suas vendas e descarta vendas canceladas.
// A associação venda -> itens é feita em uma única passada sobre a coleção de
// itens, já que a loja de dados não oferece join. Uma venda sem itens recebe
// uma lista vazia, nunca erro.
func NormalizeSales(records []*domain.SaleRecord, items []*domain.SaleItem) []*domain.Sale {
	itemsBySale := make(map[string][]*domain.SaleItem, len(records))
	for _, item := range items {
		if item == nil {
			continue
		}
		itemsBySale[item.SaleID] = append(itemsBySale[item.SaleID], item)
	}

	sales := make([]*domain.Sale, 0, len(records))
	for _, record := range records {
		if record == nil || record.IsCancelled() {
			continue
		}

		attached := itemsBySale[record.ID]
		if attached == nil {
			attached = []*domain.SaleItem{}
		}

		sales = append(sales, &domain.Sale{
			SaleRecord: *record,
			Items:      attached,
		})
	}

	return sales
}

// FilterSettled remove as vendas aguardando fechamento no caixa. Vendas
// pendentes nunca contam para faturamento, rankings ou KPIs.
func FilterSettled(sales []*domain.Sale) []*domain.Sale {
	settled := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.IsPending() {
			continue
		}
		settled = append(settled, sale)
	}
	return settled
}

// CountPending tabula separadamente as vendas aguardando fechamento no caixa
func CountPending(sales []*domain.Sale) *domain.PendingSummary {
	summary := &domain.PendingSummary{}
	for _, sale := range sales {
		if !sale.IsPending() {
			continue
		}
		summary.Count++
		summary.Amount += sale.FinalAmount
	}
	return summary
}

// FilterByWindow retém as vendas cuja data efetiva cai dentro da janela.
// Vendas com data não parseável são excluídas das janelas e o lote continua.
func FilterByWindow(sales []*domain.Sale, window domain.TimeWindow) []*domain.Sale {
	filtered := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		date, ok := saleDate(sale)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"sale_id":     sale.ID,
				"sale_number": sale.SaleNumber,
			}).Warn("Venda sem data válida, excluída das janelas de tempo")
			continue
		}

		if window.Contains(date) {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

// saleDate resolve a data efetiva da venda: a data de negócio quando presente,
// com fallback para a data de criação do registro.
func saleDate(sale *domain.Sale) (date time.Time, ok bool) {
	if !sale.BusinessDate.IsZero() {
		return sale.BusinessDate, true
	}
	if !sale.CreatedAt.IsZero() {
		return sale.CreatedAt, true
	}
	return time.Time{}, false
}
