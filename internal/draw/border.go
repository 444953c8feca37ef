package draw

import (
	"io"
	"strconv"
	"strings"
)

type borderWriter struct {
	w   io.Writer
	buf strings.Builder
}

func newBorderWriter(w io.Writer) *borderWriter {
	return &borderWriter{w: w}
}

func (b *borderWriter) at(row, col int, s string) {
	b.buf.WriteString("\033[")
	b.buf.WriteString(strconv.Itoa(row))
	b.buf.WriteByte(';')
	b.buf.WriteString(strconv.Itoa(col))
	b.buf.WriteByte('H')
	b.buf.WriteString(s)
}

// horizontal draws a bar of n dashes on row, with corners when withCorners is set.
func (b *borderWriter) horizontal(row, left, n int, withCorners bool, l, r rune) {
	bar := strings.Repeat("─", n)
	if withCorners {
		b.at(row, left, string(l)+bar+string(r))
		return
	}
	b.at(row, left+1, bar)
}

func (b *borderWriter) flush() {
	io.WriteString(b.w, b.buf.String())
}
