package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	assert.Equal(t, byte(0x00), Size(1, 1))
	assert.Equal(t, byte(0x11), Size(2, 2))
	assert.Equal(t, byte(0x55), Size(6, 6))
	assert.Equal(t, byte(0x21), Size(3, 2))
}

func TestSizeClampsOutOfRange(t *testing.T) {
	assert.Equal(t, byte(0x00), Size(0, 0))
	assert.Equal(t, byte(0x00), Size(-3, 1))
	assert.Equal(t, byte(0x77), Size(8, 8))
	assert.Equal(t, byte(0x77), Size(20, 100))
}

// textLines strips control bytes and returns the printable lines.
func textLines(data []byte) []string {
	var clean bytes.Buffer
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ESC:
			// ESC @ is two bytes, the other ESC commands used here are three
			if i+1 < len(data) && data[i+1] == '@' {
				i++
			} else {
				i += 2
			}
		case GS:
			// GS ! n and GS V n; QR tests do not go through here
			i += 2
		default:
			clean.WriteByte(data[i])
		}
	}
	return strings.Split(clean.String(), "\n")
}

func TestPriceLineFitsOnOneLine(t *testing.T) {
	doc := NewDocument(32)
	doc.PriceLine("2x Bun", "Rs20.00")

	lines := textLines(doc.Bytes())
	require.NotEmpty(t, lines)

	line := lines[0]
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "2x Bun"))
	assert.True(t, strings.HasSuffix(line, "Rs20.00"))
	assert.Equal(t, "2x Bun"+strings.Repeat(" ", 19)+"Rs20.00", line)
}

func TestPriceLineWrapsPriceWhenTooLong(t *testing.T) {
	doc := NewDocument(32)
	desc := "3x Chicken Biryani Family Pack"
	doc.PriceLine(desc, "Rs1350.00")

	lines := textLines(doc.Bytes())
	require.GreaterOrEqual(t, len(lines), 2)

	assert.Equal(t, desc, lines[0])
	assert.Len(t, lines[1], 32)
	assert.True(t, strings.HasSuffix(lines[1], "Rs1350.00"))
	assert.Equal(t, strings.Repeat(" ", 23), lines[1][:23])
}

func TestPriceLineExactWidth(t *testing.T) {
	doc := NewDocument(32)
	desc := strings.Repeat("a", 25)
	doc.PriceLine(desc, "Rs20.00")

	lines := textLines(doc.Bytes())
	require.NotEmpty(t, lines)
	assert.Equal(t, desc+"Rs20.00", lines[0])
	assert.Len(t, lines[0], 32)
}

func TestKeyValue(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("TOTAL:", "Rs100.00")

	lines := textLines(doc.Bytes())
	require.NotEmpty(t, lines)
	assert.Len(t, lines[0], 32)
	assert.True(t, strings.HasPrefix(lines[0], "TOTAL:"))
	assert.True(t, strings.HasSuffix(lines[0], "Rs100.00"))
}

func TestSeparatorSpansFullWidth(t *testing.T) {
	doc := NewDocument(32)
	doc.Separator('=')

	lines := textLines(doc.Bytes())
	require.NotEmpty(t, lines)
	assert.Equal(t, strings.Repeat("=", 32), lines[0])
}

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	data := doc.Bytes()
	require.GreaterOrEqual(t, len(data), 2)
	assert.Equal(t, []byte{ESC, '@'}, data[:2])
}

func TestQRCodeStoresDataWithLength(t *testing.T) {
	doc := NewDocument(32)
	payload := "upi://pay?pa=shop@bank&am=45.00"
	doc.QRCode(payload, 0)
	data := doc.Bytes()

	assert.True(t, bytes.Contains(data, []byte(payload)))

	// Store command carries the payload length plus the 3 header bytes
	n := len(payload) + 3
	store := []byte{GS, '(', 'k', byte(n & 0xFF), byte(n >> 8), 49, 80, 48}
	assert.True(t, bytes.Contains(data, store))

	// Print command follows the payload
	print := []byte{GS, '(', 'k', 3, 0, 49, 81, 48}
	assert.True(t, bytes.Contains(data, print))
}

func TestDefaultWidth(t *testing.T) {
	doc := NewDocument(0)
	assert.Equal(t, 32, doc.Width())
}
