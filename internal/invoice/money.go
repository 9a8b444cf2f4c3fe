package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundMoney quantizes d to two fractional digits, rounding ties away
// from zero (0.005 becomes 0.01, never banker's rounding).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseDecimal converts free-form numeric text into a decimal. It accepts
// either "." or "," as the decimal separator (thousands-grouping commas
// are not supported). On any parse failure the parsed def is returned
// instead; a malformed def yields zero. It never returns an error, which
// makes it safe to feed raw flag or form input.
func ParseDecimal(text, def string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		d, err = decimal.NewFromString(def)
		if err != nil {
			return decimal.Zero
		}
	}
	return d
}

// FormatCurrency renders amount with exactly two fractional digits and
// thousands grouping, using the European convention: "." groups, ","
// decimal mark, currency code appended. 1234.5 with "EUR" renders as
// "1.234,50 EUR". Display only; stored values are never touched.
//
// The mark convention is applied regardless of the currency code. That
// mis-renders for comma-grouping locales and is a known limitation.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	b.WriteByte(' ')
	b.WriteString(currency)
	return b.String()
}
