package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Size encodes a character width/height multiplier pair for GS !.
// Multipliers are clamped to 1..8. Size(1, 1) is normal text,
// Size(2, 2) is double width and height, Size(6, 6) is the oversized
// order-type cue on kitchen tickets.
func Size(width, height int) byte {
	if width < 1 {
		width = 1
	}
	if width > 8 {
		width = 8
	}
	if height < 1 {
		height = 1
	}
	if height > 8 {
		height = 8
	}
	return byte((width-1)<<4 | (height - 1))
}

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm paper, 48 for 80mm)
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width returns the document's character width.
func (d *Document) Width() int {
	return d.width
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetSize sets the character size multipliers, see Size.
func (d *Document) SetSize(width, height int) *Document {
	d.buf.Write([]byte{GS, '!', Size(width, height)})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	d.buf.WriteString(fmt.Sprintf(format, args...))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width separator line (e.g. "--------------------------------").
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Example: "TOTAL:                 Rs100.00"
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(value)
	d.buf.WriteByte(LF)
	return d
}

// PriceLine prints a description with its price right-justified to the
// document width. When the combined text does not fit on one line the
// price wraps to its own right-justified line instead of truncating the
// description.
// Example: "2x Bun                   Rs20.00"
func (d *Document) PriceLine(desc, price string) *Document {
	pad := d.width - len(desc) - len(price)
	if pad >= 0 {
		d.buf.WriteString(desc)
		d.buf.WriteString(strings.Repeat(" ", pad))
		d.buf.WriteString(price)
		d.buf.WriteByte(LF)
		return d
	}
	d.buf.WriteString(desc)
	d.buf.WriteByte(LF)
	d.buf.WriteString(strings.Repeat(" ", d.width-len(price)))
	d.buf.WriteString(price)
	d.buf.WriteByte(LF)
	return d
}

// QRCode prints a QR code using the native GS ( k commands. moduleSize
// controls the dot size (1..16); 0 selects a readable default.
func (d *Document) QRCode(data string, moduleSize byte) *Document {
	if moduleSize == 0 {
		moduleSize = 6
	}
	// Model 2, module size, error correction level L
	d.buf.Write([]byte{GS, '(', 'k', 4, 0, 49, 65, 50, 0})
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 67, moduleSize})
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 69, 48})
	// Store data in the symbol buffer, then print
	n := len(data) + 3
	d.buf.Write([]byte{GS, '(', 'k', byte(n & 0xFF), byte(n >> 8), 49, 80, 48})
	d.buf.WriteString(data)
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 81, 48})
	return d
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset clears the buffer and reinitializes the document.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}
