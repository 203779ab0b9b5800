package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyLabel is the fixed currency the operation books in.
const CurrencyLabel = "ETB"

var printer = message.NewPrinter(language.English)

// FormatAmount renders a monetary amount with grouped digits and a fixed
// fraction width, e.g. "ETB 12,345.67". Dashboard cards use 0 fraction
// digits, detail tables use 2.
func FormatAmount(amount decimal.Decimal, fractionDigits int) string {
	v, _ := amount.Round(int32(fractionDigits)).Float64()
	return printer.Sprintf("%s %v", CurrencyLabel, number.Decimal(v,
		number.MinFractionDigits(fractionDigits),
		number.MaxFractionDigits(fractionDigits)))
}

// FormatKg renders a weight with grouped digits and up to 2 decimals.
func FormatKg(kg float64) string {
	return printer.Sprintf("%v kg", number.Decimal(kg, number.MaxFractionDigits(2)))
}
