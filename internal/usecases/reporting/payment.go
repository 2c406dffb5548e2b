package reporting

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
	"github.com/vhgravatas/pos-analytics-api/pkg/utils"
)

const (
	compositeSeparator = "|"
	segmentSeparator   = ":"

	// fallbackPaymentMode recebe vendas sem forma de pagamento informada
	fallbackPaymentMode = "outros"
)

// NormalizeMode normaliza um token de forma de pagamento (trim + caixa baixa)
func NormalizeMode(mode string) string {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		return fallbackPaymentMode
	}
	return normalized
}

// SplitPayment decompõe a forma de pagamento de uma venda no valor contribuído
// por cada token. Uma forma simples atribui o valor integral da venda ao token;
// uma forma composta ("dinheiro:50.00|cartao:100.00") divide pelos segmentos.
// Segmento com valor não parseável contribui zero e nunca aborta o lote. A soma
// dos segmentos não é reconciliada com o valor final da venda.
func SplitPayment(mode string, finalAmount float64) map[string]float64 {
	result := make(map[string]float64)

	if !strings.Contains(mode, compositeSeparator) {
		result[NormalizeMode(mode)] = finalAmount
		return result
	}

	for _, segment := range strings.Split(mode, compositeSeparator) {
		token, amountText, _ := strings.Cut(segment, segmentSeparator)
		token = NormalizeMode(token)

		amount, err := strconv.ParseFloat(strings.TrimSpace(amountText), 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"segment": segment,
				"mode":    mode,
			}).Warn("Segmento de pagamento misto com valor inválido, contribuindo zero")
			amount = 0
		}

		result[token] += amount
	}

	return result
}

type paymentTotal struct {
	amount     float64
	salesCount int
}

// PaymentAccumulator acumula valores por forma de pagamento ao longo de um
// lote de vendas, preservando a ordem de primeira aparição de cada token para
// manter o desempate determinístico.
type PaymentAccumulator struct {
	order  []string
	totals map[string]*paymentTotal
}

func NewPaymentAccumulator() *PaymentAccumulator {
	return &PaymentAccumulator{
		order:  make([]string, 0),
		totals: make(map[string]*paymentTotal),
	}
}

// Add decompõe o pagamento da venda e soma cada token ao acumulado. Cada venda
// conta uma vez para cada token distinto com que foi paga.
func (a *PaymentAccumulator) Add(sale *domain.Sale) {
	split := SplitPayment(sale.PaymentMode, sale.FinalAmount)

	// Em formas compostas a iteração do mapa não é determinística; percorrer os
	// tokens na ordem em que aparecem na string preserva o primeiro registro.
	for _, token := range splitOrder(sale.PaymentMode) {
		amount, exists := split[token]
		if !exists {
			continue
		}
		delete(split, token)

		total, seen := a.totals[token]
		if !seen {
			total = &paymentTotal{}
			a.totals[token] = total
			a.order = append(a.order, token)
		}

		total.amount += amount
		total.salesCount++
	}
}

// Entries materializa o acumulado em entradas ordenadas, com a participação de
// cada forma no faturamento informado.
func (a *PaymentAccumulator) Entries(totalRevenue float64) []*domain.PaymentBreakdownEntry {
	entries := make([]*domain.PaymentBreakdownEntry, 0, len(a.order))
	for _, token := range a.order {
		total := a.totals[token]

		share := 0.0
		if totalRevenue > 0 {
			share = total.amount / totalRevenue * 100
		}

		entries = append(entries, &domain.PaymentBreakdownEntry{
			Mode:       token,
			Amount:     total.amount,
			SalesCount: total.salesCount,
			Share:      utils.RoundWithTwoDecimalPlace(share),
		})
	}
	return entries
}

// splitOrder lista os tokens normalizados de uma forma de pagamento na ordem
// em que aparecem, sem repetição.
func splitOrder(mode string) []string {
	if !strings.Contains(mode, compositeSeparator) {
		return []string{NormalizeMode(mode)}
	}

	seen := make(map[string]bool)
	tokens := make([]string, 0)
	for _, segment := range strings.Split(mode, compositeSeparator) {
		token, _, _ := strings.Cut(segment, segmentSeparator)
		token = NormalizeMode(token)
		if seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}
