package render

import "fmt"

// textLine is a 1-based canvas position and the text written there.
type textLine struct {
	col, row int
	text     string
}

// overlay lays out the HUD and game-over text for a cols x rows canvas.
func overlay(f Frame, cols, rows int) []textLine {
	lines := []textLine{{col: 2, row: 1, text: fmt.Sprintf("Score: %s", f.Score)}}
	if !f.GameOver {
		return lines
	}

	cx, cy := cols/2, rows/2
	for i, s := range []string{
		"G A M E   O V E R",
		fmt.Sprintf("Final score: %s", f.Score),
		"Press Q to quit",
	} {
		lines = append(lines, textLine{
			col:  max(cx-len(s)/2, 1),
			row:  cy - 2 + i*2,
			text: s,
		})
	}
	return lines
}
