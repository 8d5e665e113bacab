package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStartsWithInit(t *testing.T) {
	t.Parallel()

	d := NewDocument(32)
	assert.True(t, bytes.HasPrefix(d.Bytes(), []byte{ESC, '@'}))
}

func TestDocumentKeyValueAlignment(t *testing.T) {
	t.Parallel()

	d := NewDocument(32)
	d.Reset()
	d.KeyValue("Subtotal", "R$ 39,75")

	line := strings.TrimSuffix(string(d.Bytes()[2:]), "\n")
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "Subtotal"))
	assert.True(t, strings.HasSuffix(line, "R$ 39,75"))
}

func TestDocumentKeyValueOverflowKeepsOneSpace(t *testing.T) {
	t.Parallel()

	d := NewDocument(10)
	d.Reset()
	d.KeyValue("Subtotal geral", "R$ 1.234,56")

	line := strings.TrimSuffix(string(d.Bytes()[2:]), "\n")
	assert.Equal(t, "Subtotal geral R$ 1.234,56", line)
}

func TestDocumentItemLine(t *testing.T) {
	t.Parallel()

	d := NewDocument(32)
	d.Reset()
	d.ItemLine(3, "Cafe", "R$ 37,50")

	line := strings.TrimSuffix(string(d.Bytes()[2:]), "\n")
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "3x Cafe"))
	assert.True(t, strings.HasSuffix(line, "R$ 37,50"))
}

func TestDocumentSeparator(t *testing.T) {
	t.Parallel()

	d := NewDocument(16)
	d.Reset()
	d.Separator('-')

	line := strings.TrimSuffix(string(d.Bytes()[2:]), "\n")
	assert.Equal(t, strings.Repeat("-", 16), line)
}

func TestDocumentCut(t *testing.T) {
	t.Parallel()

	d := NewDocument(32)
	d.Cut()
	assert.True(t, bytes.HasSuffix(d.Bytes(), []byte{GS, 'V', 0x00}))
}

func TestDocumentDefaultWidth(t *testing.T) {
	t.Parallel()

	d := NewDocument(0)
	d.Reset()
	d.Separator('=')
	line := strings.TrimSuffix(string(d.Bytes()[2:]), "\n")
	assert.Len(t, line, 32)
}
