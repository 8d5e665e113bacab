package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyFieldTypingSequence(t *testing.T) {
	t.Parallel()

	f := NewCurrencyField(BRL, 0)
	var committed []Money
	f.OnChange = func(m Money) { committed = append(committed, m) }

	f.Focus()
	for _, text := range []string{"1", "12", "12,", "12,5"} {
		f.Input(text)
	}

	require.Len(t, committed, 4)
	assert.Equal(t, []Money{100, 1200, 1200, 1250}, committed)
	assert.Equal(t, "12,5", f.Display())

	f.Blur()
	assert.Equal(t, "R$ 12,50", f.Display())
	assert.Equal(t, Money(1250), f.Value())
}

func TestCurrencyFieldSanitize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		in          string
		wantDisplay string
		wantValue   Money
	}{
		{"letters dropped", "a1b2", "12", 1200},
		{"dot becomes comma", "12.5", "12,5", 1250},
		{"extra separators merge", "1,2,3", "1,23", 123},
		{"leading separator", ",5", "0,5", 50},
		{"symbol pasted", "R$ 10,00", "10,00", 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewCurrencyField(BRL, 0)
			f.Focus()
			f.Input(tc.in)
			assert.Equal(t, tc.wantDisplay, f.Display())
			assert.Equal(t, tc.wantValue, f.Value())
		})
	}
}

func TestCurrencyFieldFocusShowsRawValue(t *testing.T) {
	t.Parallel()

	f := NewCurrencyField(BRL, 1250)
	assert.Equal(t, "R$ 12,50", f.Display())

	f.Focus()
	assert.Equal(t, "12,5", f.Display())

	f.Blur()
	assert.Equal(t, "R$ 12,50", f.Display())
}

func TestCurrencyFieldZeroShowsEmpty(t *testing.T) {
	t.Parallel()

	f := NewCurrencyField(BRL, 0)
	assert.Equal(t, "", f.Display())
	f.Focus()
	assert.Equal(t, "", f.Display())
}

func TestCurrencyFieldSetValueRespectsFocus(t *testing.T) {
	t.Parallel()

	f := NewCurrencyField(BRL, 0)
	f.Focus()
	f.SetValue(5000)
	// no currency reformat mid-typing
	assert.Equal(t, "50", f.Display())

	f.Blur()
	f.SetValue(5000)
	assert.Equal(t, "R$ 50,00", f.Display())
}

func TestCurrencyFieldBlurCallback(t *testing.T) {
	t.Parallel()

	f := NewCurrencyField(BRL, 0)
	blurred := false
	f.OnBlur = func() { blurred = true }

	f.Focus()
	f.Input("10")
	f.Blur()
	assert.True(t, blurred)
}

func TestNumberFieldClamp(t *testing.T) {
	t.Parallel()

	f := NewNumberField(0, 100, 0)

	f.Input("42")
	assert.Equal(t, 42, f.Value())

	f.Input("150")
	assert.Equal(t, 100, f.Value())

	f.Input("")
	assert.Equal(t, 0, f.Value())

	f.SetValue(-5)
	assert.Equal(t, 0, f.Value())
	assert.Equal(t, "0", f.Display())
}

func TestNumberFieldKeepsDigitsOnly(t *testing.T) {
	t.Parallel()

	f := NewNumberField(0, 100, 0)
	f.Input("1a0")
	assert.Equal(t, 10, f.Value())
	assert.Equal(t, "10", f.Display())
}
