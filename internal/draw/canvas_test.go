package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/meteors/internal/sprite"
)

func filled(w, h int) *sprite.Image {
	img := sprite.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y)
		}
	}
	return img
}

func countCells(c *Canvas) map[rune]int {
	got := map[rune]int{}
	c.Cells(func(_, _ int, ch rune) { got[ch]++ })
	return got
}

func TestBlitOneToOne(t *testing.T) {
	// 4 columns x 2 rows of cells = 4x4 sub-pixels.
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Blit(filled(2, 1), 1, 0)

	var cells []string
	c.Cells(func(col, row int, ch rune) {
		cells = append(cells, string(ch))
		if row != 0 || (col != 1 && col != 2) {
			t.Fatalf("unexpected cell at (%d,%d)", col, row)
		}
	})
	if strings.Join(cells, "") != "▀▀" {
		t.Fatalf("cells = %q, want two upper halves", cells)
	}
}

func TestBlitDownscaleKeepsSmallSprites(t *testing.T) {
	c := NewScaledCanvas(10, 5, 1000, 1000)
	c.Blit(filled(3, 3), 500, 500)

	if n := len(countCells(c)); n == 0 {
		t.Fatal("small sprite vanished when scaled down")
	}
}

func TestBlitClipsOffCanvas(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Blit(filled(4, 4), -2, -2)
	c.Blit(filled(4, 4), 3, 3)

	got := countCells(c)
	if got[BlockFull] != 2 || got[BlockLowerHalf] != 1 || len(got) != 2 {
		t.Fatalf("cells = %v, want 2 full and 1 lower half", got)
	}
}

func TestRenderEmitsOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	c := NewScaledCanvas(4, 2, 4, 4)

	c.Blit(filled(1, 2), 0, 0)
	c.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[1;1H█") {
		t.Fatalf("first frame missing block at 1;1: %q", out.String())
	}

	out.Reset()
	c.Clear()
	c.Blit(filled(1, 2), 0, 0)
	c.Render(cw)
	cw.Flush()
	if out.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", out.String())
	}

	out.Reset()
	c.Clear()
	c.Render(cw)
	cw.Flush()
	if !strings.Contains(out.String(), "\033[1;1H ") {
		t.Fatalf("cleared cell not erased: %q", out.String())
	}
}

func TestTouchForcesCellRedraw(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Render(cw)
	cw.Flush()

	out.Reset()
	c.Touch(1, 1, 2)
	c.Render(cw)
	cw.Flush()
	if got, want := out.String(), "\033[5;4H  "; got != want {
		t.Fatalf("touched redraw = %q, want %q", got, want)
	}
}

func TestFitTerminal(t *testing.T) {
	w, h, col, row := FitTerminal(300, 50, 200, 60)
	if w != 200 || h != 50 || col != 50 || row != 0 {
		t.Fatalf("got %d %d %d %d, want 200 50 50 0", w, h, col, row)
	}
}

func TestRenderBorder(t *testing.T) {
	var out bytes.Buffer
	c := NewScaledCanvas(3, 1, 3, 2)
	c.SetOffset(2, 2)
	c.RenderBorder(&out)

	s := out.String()
	for _, want := range []string{"\033[2;2H┌───┐", "\033[4;2H└───┘", "\033[3;2H│", "\033[3;6H│"} {
		if !strings.Contains(s, want) {
			t.Errorf("border missing %q in %q", want, s)
		}
	}
}
