// Package render draws completed simulation frames to a terminal.
package render

import "github.com/tomz197/meteors/internal/object"

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered play area.
const (
	MaxColumns = 200
	MaxRows    = 60
)

// Frame is the read-only view of one completed simulation step.
type Frame struct {
	Objects  []object.Object // Draw order, back to front
	Score    string
	GameOver bool
	Area     object.Screen // Logical play area the objects live in
}

// Sink consumes frames. Implementations must not retain Objects past Render.
type Sink interface {
	Render(f Frame) error
}
