package snake

import (
	"github.com/vovakirdan/xenzia/internal/core"
)

// Render draws the board into dst, scaling the logical canvas to the
// screen's cell grid. Shapes outside the canvas are clipped.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	toCell := func(p core.Point) (int, int) {
		return p.X * dst.Width() / s.opts.Width, p.Y * dst.Height() / s.opts.Height
	}
	drawSegment := func(seg core.Segment) {
		x0, y0 := toCell(seg.From)
		x1, y1 := toCell(seg.To)
		dst.DrawLine(x0, y0, x1, y1, '•', core.ColorGreen)
	}

	for _, seg := range s.snake.body {
		drawSegment(seg)
	}
	if neck, ok := s.snake.Neck(); ok {
		drawSegment(neck)
	}

	fx, fy := toCell(s.food.Center())
	dst.SetColored(fx, fy, '*', core.ColorRed)

	hx, hy := toCell(s.snake.head.Center())
	dst.SetColored(hx, hy, 'O', core.ColorBrightGreen)
}
