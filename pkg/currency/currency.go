// Package currency formata valores monetários em reais para as linhas de
// texto dos relatórios.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BRLFormatter formata valores no padrão brasileiro (R$ 1.234,56)
type BRLFormatter struct {
	printer *message.Printer
}

func NewBRLFormatter() *BRLFormatter {
	return &BRLFormatter{
		printer: message.NewPrinter(language.BrazilianPortuguese),
	}
}

func (f *BRLFormatter) Format(amount float64) string {
	return f.printer.Sprintf("R$ %.2f", amount)
}
