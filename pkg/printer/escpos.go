package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS control bytes.
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Alignment arguments for ESC a.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size arguments for GS !.
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width and height
	FontWide   = 0x10
	FontTall   = 0x01
)

// Document accumulates an ESC/POS byte stream for a fixed-width thermal
// printer. The width is in characters: 32 covers 58mm paper, 48 covers
// 80mm. All methods return the document for chaining.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a document at the given character width, defaulting
// to 32 when the width is unset.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	return d.Init()
}

// Init emits ESC @, resetting the printer's formatting state.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// LineFeed advances one line.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines advances n lines, used to push the printed tail past the
// cutter before cutting.
func (d *Document) FeedLines(n int) *Document {
	for ; n > 0; n-- {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign selects AlignLeft, AlignCenter or AlignRight for following text.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold toggles emphasized text.
func (d *Document) SetBold(on bool) *Document {
	var b byte
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize selects FontNormal, FontDouble, FontWide or FontTall.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text emits one line of text.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF emits one formatted line of text.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator emits a full-width rule of the given character.
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue emits a label and a right-aligned value on one line, the shape
// of every totals row on a receipt.
func (d *Document) KeyValue(key, value string) *Document {
	return d.alignedLine(key, value)
}

// ItemLine emits a receipt item row: quantity and name on the left, the
// line total right-aligned.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	return d.alignedLine(fmt.Sprintf("%dx %s", qty, name), total)
}

// alignedLine pads between the left and right fragments out to the paper
// width. When the fragments do not fit, a single space is kept and the
// line overflows; thermal printers wrap rather than truncate.
func (d *Document) alignedLine(left, right string) *Document {
	pad := d.width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(left)
	d.buf.WriteString(strings.Repeat(" ", pad))
	return d.Text(right)
}

// Cut emits a full paper cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut leaves a holding tab so the receipt does not drop.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset drops everything accumulated and reinitializes.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	return d.Init()
}
