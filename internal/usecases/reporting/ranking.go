package reporting

import (
	"sort"

	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

// RankVendors monta o ranking de vendedores por faturamento na janela. As
// vendas são atribuídas pelo nome do vendedor; vendedores sem venda aparecem
// zerados. A ordenação é estável: empate em faturamento preserva a ordem de
// entrada da lista de vendedores.
func RankVendors(sales []*domain.Sale, vendors []*domain.Vendor) []*domain.VendorRankingEntry {
	totalsByName := make(map[string]*vendorTotal, len(vendors))
	for _, sale := range sales {
		if sale.VendorName == "" {
			continue
		}
		total, exists := totalsByName[sale.VendorName]
		if !exists {
			total = &vendorTotal{}
			totalsByName[sale.VendorName] = total
		}
		total.amount += sale.FinalAmount
		total.count++
	}

	entries := make([]*domain.VendorRankingEntry, 0, len(vendors))
	for _, vendor := range vendors {
		total := totalsByName[vendor.Name]
		if total == nil {
			total = &vendorTotal{}
		}

		target := vendor.TargetAmount()

		attainment := 0.0
		if target > 0 {
			attainment = total.amount / target * 100
		}

		averageTicket := 0.0
		if total.count > 0 {
			averageTicket = total.amount / float64(total.count)
		}

		entries = append(entries, &domain.VendorRankingEntry{
			Name:             vendor.Name,
			TotalAmount:      total.amount,
			SalesQuantity:    total.count,
			AverageTicket:    averageTicket,
			Target:           target,
			TargetAttainment: attainment,
			TargetHit:        total.amount >= target,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalAmount > entries[j].TotalAmount
	})

	return entries
}

type vendorTotal struct {
	amount float64
	count  int
}

// TopVendors retorna os n primeiros do ranking, para o painel de destaques
func TopVendors(entries []*domain.VendorRankingEntry, n int) []*domain.VendorRankingEntry {
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// RankProducts acumula quantidade e subtotal por nome de produto sobre os
// itens de todas as vendas da janela, em ordem decrescente de quantidade.
// Empate preserva a ordem de primeira aparição do produto.
func RankProducts(sales []*domain.Sale) []*domain.ProductRankingEntry {
	order := make([]string, 0)
	totals := make(map[string]*domain.ProductRankingEntry)

	for _, sale := range sales {
		for _, item := range sale.Items {
			entry, exists := totals[item.ProductName]
			if !exists {
				entry = &domain.ProductRankingEntry{Name: item.ProductName}
				totals[item.ProductName] = entry
				order = append(order, item.ProductName)
			}
			entry.Quantity += item.Quantity
			entry.TotalValue += item.Subtotal
		}
	}

	entries := make([]*domain.ProductRankingEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, totals[name])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity > entries[j].Quantity
	})

	return entries
}

// TopProducts retorna os n produtos mais vendidos
func TopProducts(entries []*domain.ProductRankingEntry, n int) []*domain.ProductRankingEntry {
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
