package money

import (
	"strconv"
	"strings"
)

// CurrencyField is a focus-aware editing controller for a currency text
// input. While focused it holds a raw numeric string the user can edit
// freely; on blur it reformats to the full currency string. The committed
// value is propagated through OnChange on every keystroke so dependent
// totals stay live during editing.
type CurrencyField struct {
	locale   Locale
	value    Money
	display  string
	focused  bool
	OnChange func(Money)
	OnBlur   func()
}

// NewCurrencyField creates a blurred field holding the initial value.
func NewCurrencyField(locale Locale, initial Money) *CurrencyField {
	f := &CurrencyField{locale: locale, value: initial}
	f.display = f.blurredDisplay(initial)
	return f
}

// Value returns the committed amount.
func (f *CurrencyField) Value() Money { return f.value }

// Display returns the text the input should currently show.
func (f *CurrencyField) Display() string { return f.display }

// Focused reports whether the field has focus.
func (f *CurrencyField) Focused() bool { return f.focused }

// Focus switches the display to the editable raw numeric form (no symbol,
// locale decimal separator retained).
func (f *CurrencyField) Focus() {
	f.focused = true
	f.display = f.rawDisplay(f.value)
}

// Blur reformats the committed value as currency and then forwards the
// blur notification.
func (f *CurrencyField) Blur() {
	f.focused = false
	f.display = f.blurredDisplay(f.value)
	if f.OnBlur != nil {
		f.OnBlur()
	}
}

// Input processes the full text of the field after a keystroke. The text is
// filtered to digits plus one decimal separator, extra separators are merged
// into the trailing fragment, and a leading separator gains an implicit
// zero. The filtered text is parsed leniently and the result propagated.
func (f *CurrencyField) Input(text string) {
	clean := f.sanitize(text)
	f.display = clean
	f.commit(f.locale.Parse(clean))
}

// SetValue updates the committed value from outside (e.g. a parent reset).
// The display is re-derived according to focus state so no reformat happens
// mid-typing.
func (f *CurrencyField) SetValue(m Money) {
	f.commit(m)
	if f.focused {
		f.display = f.rawDisplay(m)
	} else {
		f.display = f.blurredDisplay(m)
	}
}

func (f *CurrencyField) commit(m Money) {
	f.value = m
	if f.OnChange != nil {
		f.OnChange(m)
	}
}

func (f *CurrencyField) sanitize(text string) string {
	sep := f.locale.Decimal

	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == ',':
			// either separator is accepted and normalized to the locale's
			b.WriteString(sep)
		}
	}
	clean := b.String()

	// keep one separator; extra ones collapse into the trailing fragment
	if parts := strings.Split(clean, sep); len(parts) > 2 {
		clean = parts[0] + sep + strings.Join(parts[1:], "")
	}

	if strings.HasPrefix(clean, sep) {
		clean = "0" + clean
	}
	return clean
}

// rawDisplay renders the value for in-focus editing: plain digits with the
// locale decimal separator and trailing zeros trimmed ("12,5", "12").
func (f *CurrencyField) rawDisplay(m Money) string {
	if m == 0 {
		return ""
	}
	s := strconv.FormatInt(int64(m)/100, 10)
	cents := int64(m) % 100
	if cents == 0 {
		return s
	}
	frac := strconv.FormatInt(cents, 10)
	if cents < 10 {
		frac = "0" + frac
	}
	frac = strings.TrimRight(frac, "0")
	return s + f.locale.Decimal + frac
}

func (f *CurrencyField) blurredDisplay(m Money) string {
	if m == 0 {
		return ""
	}
	return f.locale.Format(m)
}

// NumberField is the quantity-style variant: integer only, clamped to a
// [min,max] range on both keystroke and blur. Out-of-range input snaps to
// the nearest bound and the clamped value is re-propagated.
type NumberField struct {
	min, max int
	value    int
	display  string
	focused  bool
	OnChange func(int)
}

// NewNumberField creates a blurred numeric field clamped to [min,max].
func NewNumberField(min, max, initial int) *NumberField {
	f := &NumberField{min: min, max: max}
	f.value = f.clamp(initial)
	f.display = strconv.Itoa(f.value)
	return f
}

// Value returns the committed integer.
func (f *NumberField) Value() int { return f.value }

// Display returns the text the input should currently show.
func (f *NumberField) Display() string { return f.display }

// Focus marks the field focused; the display keeps its numeric form.
func (f *NumberField) Focus() { f.focused = true }

// Blur snaps the display back to the committed (clamped) value.
func (f *NumberField) Blur() {
	f.focused = false
	f.display = strconv.Itoa(f.value)
}

// Input processes the full text after a keystroke, keeping digits only.
func (f *NumberField) Input(text string) {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	f.display = clean

	n, err := strconv.Atoi(clean)
	if err != nil {
		n = f.min
	}
	f.commit(f.clamp(n))
}

// SetValue updates the committed value from outside, clamping it.
func (f *NumberField) SetValue(n int) {
	f.commit(f.clamp(n))
	f.display = strconv.Itoa(f.value)
}

func (f *NumberField) commit(n int) {
	f.value = n
	if f.OnChange != nil {
		f.OnChange(n)
	}
}

func (f *NumberField) clamp(n int) int {
	if n < f.min {
		return f.min
	}
	if n > f.max {
		return f.max
	}
	return n
}
