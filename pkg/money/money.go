package money

import (
	"math"
	"strconv"
	"strings"
)

// Money is a non-negative monetary amount in minor units (centavos).
// Keeping amounts as integers avoids binary floating-point drift across
// repeated additions and percentage discounts.
type Money int64

// Locale describes how a currency is written for a given locale.
type Locale struct {
	Symbol        string // currency symbol, e.g. "R$"
	Decimal       string // decimal separator, e.g. ","
	Thousands     string // thousands separator, e.g. "."
	FractionDigit int    // minor-unit digits, e.g. 2
}

// BRL is the default pt-BR locale: "R$ 1.234,56".
var BRL = Locale{
	Symbol:        "R$",
	Decimal:       ",",
	Thousands:     ".",
	FractionDigit: 2,
}

// FromFloat converts a decimal amount (e.g. a JSON number from the backend)
// into minor units, rounding half-up.
func FromFloat(v float64) Money {
	if v < 0 {
		return Money(-int64(math.Round(-v * 100)))
	}
	return Money(int64(math.Round(v * 100)))
}

// Float64 converts the amount back to a decimal value for API payloads.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// Mul multiplies the amount by an integer quantity.
func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

// Percent applies a percentage in [0,100], rounding half-up to the minor
// unit. Percent(10) of 39.75 is 3.98.
func (m Money) Percent(pct float64) Money {
	if pct <= 0 || m <= 0 {
		return 0
	}
	return Money(int64(math.Round(float64(m) * pct / 100)))
}

// Format renders the amount in the locale's currency style, e.g.
// "R$ 1.234,56". Deterministic and side-effect free.
func (l Locale) Format(m Money) string {
	neg := m < 0
	if neg {
		m = -m
	}

	units := int64(m) / 100
	cents := int64(m) % 100

	digits := strconv.FormatInt(units, 10)

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	if l.Symbol != "" {
		b.WriteString(l.Symbol)
		b.WriteString(" ")
	}

	// group the integer part in threes from the right
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(l.Thousands)
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(l.Thousands)
		}
	}

	b.WriteString(l.Decimal)
	if cents < 10 {
		b.WriteString("0")
	}
	b.WriteString(strconv.FormatInt(cents, 10))

	return b.String()
}

// Parse converts a locale-formatted string back into minor units. It strips
// the currency symbol and whitespace, drops thousands separators and
// normalizes the decimal separator. Malformed or empty input parses to zero,
// never to an error: partial user input mid-typing must not crash callers.
func (l Locale) Parse(text string) Money {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, l.Symbol, "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	s = strings.ReplaceAll(s, l.Thousands, "")
	s = strings.Replace(s, l.Decimal, ".", 1)

	intPart := s
	fracPart := ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0
	}

	// keep at most the locale's fraction digits, padding short input
	// ("12,5" means 12 units and 50 cents)
	if len(fracPart) > l.FractionDigit {
		fracPart = fracPart[:l.FractionDigit]
	}
	for len(fracPart) < l.FractionDigit {
		fracPart += "0"
	}
	cents := int64(0)
	if fracPart != "" {
		cents, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0
		}
	}

	m := Money(units*100 + cents)
	if neg {
		m = -m
	}
	return m
}
