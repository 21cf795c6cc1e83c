package snake

import (
	"math/rand"

	"github.com/vovakirdan/xenzia/internal/core"
)

// foodSpawner places food uniformly at random on the canvas.
// It does not avoid the snake, so food can appear under the body.
type foodSpawner struct {
	rng           *rand.Rand
	width, height int
	size          int
}

func newFoodSpawner(o Options) *foodSpawner {
	return &foodSpawner{
		rng:    rand.New(rand.NewSource(o.Seed)),
		width:  o.Width,
		height: o.Height,
		size:   o.FoodSize,
	}
}

// spawn returns a food box with its top-left corner in
// [0, width-size) x [0, height-size).
func (f *foodSpawner) spawn() core.Box {
	x := f.rng.Intn(max(f.width-f.size, 1))
	y := f.rng.Intn(max(f.height-f.size, 1))
	return core.NewBox(x, y, f.size)
}
