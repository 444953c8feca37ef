// Package draw rasterises sprites onto a half-block terminal canvas.
package draw

import (
	"io"
	"math"

	"github.com/tomz197/meteors/internal/sprite"
)

// Block characters used for the two vertical sub-pixels of a cell.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// dirty never matches a real cell, forcing a redraw.
const dirty rune = -1

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Sprites are placed in logical coordinates and scaled to the terminal.
type Canvas struct {
	termWidth      int    // Terminal columns covered by the canvas
	termHeight     int    // Terminal rows covered by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y * termWidth + x]
	prev           []rune // Cells emitted by the last Render

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A size change forces the next Render to emit every cell.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]rune, termHeight*termWidth)
		c.ForceRedraw()
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the column count covered by the canvas.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the row count covered by the canvas.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels. The previous frame is kept for diffing.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = dirty
	}
}

// Touch marks n cells starting at the 0-based (col, row) as overwritten by
// something other than the canvas, e.g. a text overlay.
func (c *Canvas) Touch(col, row, n int) {
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col, 0); x < min(col+n, c.termWidth); x++ {
		c.prev[row*c.termWidth+x] = dirty
	}
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Blit draws the opaque pixels of img with its top-left corner at logical (x, y).
// Every source pixel covers at least one canvas pixel so small sprites stay
// visible when the canvas is coarser than the logical area.
func (c *Canvas) Blit(img *sprite.Image, x, y float64) {
	if img == nil {
		return
	}
	w, h := img.Width(), img.Height()
	for sy := 0; sy < h; sy++ {
		py0 := int(math.Floor((y + float64(sy)) * c.scaleY))
		py1 := max(int(math.Floor((y+float64(sy)+1)*c.scaleY)), py0+1)
		if py1 <= 0 || py0 >= c.subPixelHeight {
			continue
		}
		for sx := 0; sx < w; sx++ {
			if !img.Opaque(sx, sy) {
				continue
			}
			px0 := int(math.Floor((x + float64(sx)) * c.scaleX))
			px1 := max(int(math.Floor((x+float64(sx)+1)*c.scaleX)), px0+1)
			for py := py0; py < py1; py++ {
				for px := px0; px < px1; px++ {
					c.setPixel(px, py)
				}
			}
		}
	}
}

// cell returns the block character for a 0-based terminal cell.
func (c *Canvas) cell(col, row int) rune {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	}
	return BlockEmpty
}

// Cells calls fn for every non-empty cell with 0-based canvas coordinates.
func (c *Canvas) Cells(fn func(col, row int, ch rune)) {
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			if ch := c.cell(col, row); ch != BlockEmpty {
				fn(col, row, ch)
			}
		}
	}
}

// Render emits the cells that changed since the previous Render. Cursor
// positions are 1-based canvas coordinates; the ChunkWriter applies the offset.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.termHeight; row++ {
		run := false // cursor already sits on this cell
		for col := 0; col < c.termWidth; col++ {
			ch := c.cell(col, row)
			i := row*c.termWidth + col
			if c.prev[i] == ch {
				run = false
				continue
			}
			c.prev[i] = ch
			if !run {
				cw.MoveCursor(col+1, row+1)
			}
			cw.WriteRune(ch)
			run = true
		}
	}
}

// RenderBorder draws a box around the canvas area when the terminal exceeds
// the max render resolution. Positions are absolute, so w must not apply an offset.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	bw := newBorderWriter(w)
	if hasV {
		bw.horizontal(top, left, c.termWidth, hasH, '┌', '┐')
		bw.horizontal(bottom, left, c.termWidth, hasH, '└', '┘')
	}
	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow, endRow = c.offsetRow+1, c.offsetRow+c.termHeight+1
		}
		for row := startRow; row < endRow; row++ {
			bw.at(row, left, "│")
			bw.at(row, right, "│")
		}
	}
	bw.flush()
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// FitTerminal clamps a termWidth x termHeight terminal to at most
// maxWidth x maxHeight cells and returns the offset that centres that area.
func FitTerminal(termWidth, termHeight, maxWidth, maxHeight int) (width, height, offCol, offRow int) {
	width = min(termWidth, maxWidth)
	height = min(termHeight, maxHeight)
	return width, height, (termWidth - width) / 2, (termHeight - height) / 2
}
