package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders an amount as a Brazilian Real currency string,
// e.g. 1234.56 -> "R$ 1.234,56".
func FormatPrice(amount float64) string {
	return brl.Sprintf("R$ %.2f", amount)
}
