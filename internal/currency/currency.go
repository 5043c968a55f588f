// Package currency converts TRY base amounts into the display currencies
// shoppers can pick. Conversion is plain static-rate multiplication; the
// converted figure is informational and never fed back into totals.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Code is one of the supported display currencies.
type Code string

const (
	TRY Code = "TRY"
	EUR Code = "EUR"
	USD Code = "USD"
)

// Rates holds the multipliers from TRY. The TRY rate is implicitly 1.
type Rates struct {
	EUR float64 `json:"EUR"`
	USD float64 `json:"USD"`
}

// FallbackRates is used when the stored rates cannot be loaded.
var FallbackRates = Rates{EUR: 0.028, USD: 0.030}

var symbols = map[Code]string{
	TRY: "₺",
	EUR: "€",
	USD: "$",
}

var (
	localeTR = language.MustParse("tr-TR")
	localeEN = language.MustParse("en-US")
)

// Valid reports whether c is a supported currency code.
func Valid(c Code) bool {
	return c == TRY || c == EUR || c == USD
}

// Convert turns a TRY amount into the target currency, rounded to two
// decimal places. Unknown codes fall through to the TRY amount.
func Convert(amountTRY float64, target Code, rates Rates) float64 {
	switch target {
	case EUR:
		return round2(amountTRY * rates.EUR)
	case USD:
		return round2(amountTRY * rates.USD)
	default:
		return amountTRY
	}
}

// Format renders an amount with the currency symbol and locale-appropriate
// digit grouping: tr-TR for TRY, en-US for everything else.
func Format(amount float64, c Code) string {
	loc := localeEN
	if c == TRY {
		loc = localeTR
	}
	return symbols[c] + message.NewPrinter(loc).Sprintf("%.2f", amount)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
