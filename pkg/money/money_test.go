package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   Money
		want string
	}{
		{"zero", 0, "R$ 0,00"},
		{"cents only", 5, "R$ 0,05"},
		{"no grouping", 3975, "R$ 39,75"},
		{"one group", 123456, "R$ 1.234,56"},
		{"two groups", 123456789, "R$ 1.234.567,89"},
		{"exact group boundary", 100000, "R$ 1.000,00"},
		{"negative", -1050, "-R$ 10,50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BRL.Format(tc.in))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want Money
	}{
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"plain", "39,75", 3975},
		{"formatted", "R$ 1.234,56", 123456},
		{"no fraction", "12", 1200},
		{"short fraction pads", "12,5", 1250},
		{"long fraction truncates", "12,999", 1299},
		{"separator only fraction", "0,07", 7},
		{"whitespace", "  R$ 10,00  ", 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BRL.Parse(tc.in))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []Money{0, 1, 99, 100, 3975, 123456, 99999999} {
		assert.Equal(t, m, BRL.Parse(BRL.Format(m)), "round trip for %d", int64(m))
	}
}

func TestFormatIdempotentThroughParse(t *testing.T) {
	t.Parallel()

	// formatting an already formatted value must not change it
	s := BRL.Format(123456)
	assert.Equal(t, s, BRL.Format(BRL.Parse(s)))
}

func TestPercent(t *testing.T) {
	t.Parallel()

	// 10% of 39.75 is 3.975, rounded half-up to 3.98
	assert.Equal(t, Money(398), Money(3975).Percent(10))
	assert.Equal(t, Money(0), Money(3975).Percent(0))
	assert.Equal(t, Money(3975), Money(3975).Percent(100))
	assert.Equal(t, Money(0), Money(0).Percent(50))
	// half-up at the boundary: 0.5% of 1.00 is 0.005 -> 0.01
	assert.Equal(t, Money(1), Money(100).Percent(0.5))
}

func TestFromFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Money(3975), FromFloat(39.75))
	assert.Equal(t, Money(1), FromFloat(0.005))
	assert.Equal(t, Money(0), FromFloat(0))
	assert.Equal(t, Money(-1050), FromFloat(-10.5))
	// classic binary float trap
	assert.Equal(t, Money(29), FromFloat(0.29))
}

func TestMulAndFloat64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Money(3975), Money(1325).Mul(3))
	assert.Equal(t, 39.75, Money(3975).Float64())
}
