package object

import (
	"time"

	"github.com/tomz197/meteors/internal/sprite"
)

// recorder is a Spawner that keeps everything spawned.
type recorder struct {
	spawned []Object
	groups  [][]Group
}

func (r *recorder) Spawn(obj Object, groups ...Group) {
	r.spawned = append(r.spawned, obj)
	r.groups = append(r.groups, groups)
}

func square(n int) *sprite.Image {
	img := sprite.New(n, n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.Set(x, y)
		}
	}
	return img
}

var testScreen = Screen{Width: 1280, Height: 720}

func ctxAt(now time.Duration, dt time.Duration, in Input, sp Spawner) UpdateContext {
	return UpdateContext{
		Delta:   dt,
		Now:     now,
		Input:   in,
		Screen:  testScreen,
		Spawner: sp,
	}
}

const frame = 16 * time.Millisecond
