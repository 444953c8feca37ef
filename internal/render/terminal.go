package render

import (
	"fmt"
	"io"
	"os"

	"github.com/tomz197/meteors/internal/draw"
	"golang.org/x/term"
)

const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (width, height int, err error)

func stdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Terminal renders frames as ANSI half-block cells, sending only the cells
// that changed since the previous frame.
type Terminal struct {
	w        io.Writer
	size     SizeFunc
	cw       *draw.ChunkWriter
	canvas   *draw.Canvas
	gameOver bool
}

// NewTerminal creates a sink writing to w. size reports the terminal
// dimensions; nil uses the local terminal.
func NewTerminal(w io.Writer, size SizeFunc) *Terminal {
	if size == nil {
		size = stdoutSize
	}
	return &Terminal{
		w:    w,
		size: size,
		cw:   draw.NewChunkWriter(w, 0, 0),
	}
}

// Render draws f.
func (t *Terminal) Render(f Frame) error {
	if err := t.layout(f); err != nil {
		return err
	}
	if f.GameOver != t.gameOver {
		t.gameOver = f.GameOver
		t.reset()
	}

	t.canvas.Clear()
	for _, obj := range f.Objects {
		r := obj.Bounds()
		t.canvas.Blit(obj.Visual(), r.X, r.Y)
	}
	t.canvas.Render(t.cw)

	for _, l := range overlay(f, t.canvas.TerminalWidth(), t.canvas.TerminalHeight()) {
		t.cw.WriteAt(l.col, l.row, l.text)
		t.canvas.Touch(l.col-1, l.row-1, len(l.text))
	}
	return t.cw.Flush()
}

// Close restores the cursor and clears the screen.
func (t *Terminal) Close() error {
	io.WriteString(t.cw, clearScreen+showCursor)
	return t.cw.Flush()
}

// layout fits the canvas to the current terminal size.
func (t *Terminal) layout(f Frame) error {
	termWidth, termHeight, err := t.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	w, h, offCol, offRow := draw.FitTerminal(termWidth, termHeight, MaxColumns, MaxRows)

	if t.canvas == nil {
		t.canvas = draw.NewScaledCanvas(w, h, f.Area.Width, f.Area.Height)
		t.canvas.SetOffset(offCol, offRow)
		t.cw.SetOffset(offCol, offRow)
		io.WriteString(t.cw, hideCursor)
		t.reset()
		return nil
	}

	if w != t.canvas.TerminalWidth() || h != t.canvas.TerminalHeight() ||
		offCol != t.canvas.OffsetCol() || offRow != t.canvas.OffsetRow() {
		t.canvas.Resize(w, h)
		t.canvas.SetOffset(offCol, offRow)
		t.cw.SetOffset(offCol, offRow)
		t.reset()
	}
	return nil
}

// reset clears the terminal and schedules a full redraw including the border.
func (t *Terminal) reset() {
	io.WriteString(t.cw, clearScreen)
	t.canvas.ForceRedraw()
	t.canvas.RenderBorder(t.cw)
}
