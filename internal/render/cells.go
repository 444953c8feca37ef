package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/meteors/internal/draw"
)

// Cells renders frames onto a tcell screen, which does its own diffing.
type Cells struct {
	screen tcell.Screen
	canvas *draw.Canvas
	style  tcell.Style
	text   tcell.Style
}

// NewCells creates a sink drawing to an initialised screen.
func NewCells(screen tcell.Screen) *Cells {
	return &Cells{
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		text:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// Render draws f and shows the screen.
func (c *Cells) Render(f Frame) error {
	termWidth, termHeight := c.screen.Size()
	w, h, offCol, offRow := draw.FitTerminal(termWidth, termHeight, MaxColumns, MaxRows)
	if c.canvas == nil {
		c.canvas = draw.NewScaledCanvas(w, h, f.Area.Width, f.Area.Height)
	} else {
		c.canvas.Resize(w, h)
	}
	c.canvas.SetOffset(offCol, offRow)

	c.screen.Clear()
	c.canvas.Clear()
	for _, obj := range f.Objects {
		r := obj.Bounds()
		c.canvas.Blit(obj.Visual(), r.X, r.Y)
	}
	c.canvas.Cells(func(col, row int, ch rune) {
		c.screen.SetContent(col+offCol, row+offRow, ch, nil, c.style)
	})

	for _, l := range overlay(f, w, h) {
		x := l.col - 1 + offCol
		for _, r := range l.text {
			c.screen.SetContent(x, l.row-1+offRow, r, nil, c.text)
			x++
		}
	}
	c.screen.Show()
	return nil
}
