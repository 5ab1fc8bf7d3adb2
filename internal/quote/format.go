package quote

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are presented in Colombian pesos: whole units with es-CO thousands
// separators. Rounding happens here and nowhere else.
var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an amount as "$1.234.567".
func FormatCOP(amount float64) string {
	return printer.Sprintf("$%d", int64(math.Round(amount)))
}
