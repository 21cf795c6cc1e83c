package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/xenzia/internal/core"
)

func TestRenderInitial(t *testing.T) {
	s := newTestSession(t, nil)
	s.food = core.NewBox(100, 50, 5)
	screen := core.NewScreen(50, 30)

	s.Render(screen)

	// Head centre (255,155) and food centre (102,52) on a 10x scale
	if cell := screen.GetCell(25, 15); cell.Rune != 'O' || cell.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected bright green 'O'", cell)
	}
	if cell := screen.GetCell(10, 5); cell.Rune != '*' || cell.Color != core.ColorRed {
		t.Errorf("food cell = %+v, expected red '*'", cell)
	}
}

func TestRenderBody(t *testing.T) {
	s := newTestSession(t, nil)
	parkFood(s)
	s.Snake().grow(10)
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	screen := core.NewScreen(50, 30)

	s.Render(screen)

	// Head centre x = 255 + 5*20 = 355; the body trails to the left of it
	if screen.GetCell(35, 15).Rune != 'O' {
		t.Errorf("head not at (35, 15):\n%s", screen.String())
	}
	if screen.GetCell(33, 15).Rune != '•' {
		t.Errorf("expected body behind the head:\n%s", screen.String())
	}
	if strings.Count(screen.String(), "O") != 1 {
		t.Error("exactly one head should be drawn")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	s := newTestSession(t, nil)
	screen := core.NewScreen(0, 0)
	s.Render(screen) // must not panic
}

func TestSnapshotString(t *testing.T) {
	s := newTestSession(t, nil)
	s.food = core.NewBox(100, 50, 5)
	out := s.Snapshot().String()

	for _, want := range []string{
		"tick:     0",
		"state:    running",
		"score:    0",
		"head:     (500, 300) box (250, 150)-(260, 160)",
		"dir:      right",
		"body:     0/0",
		"food:     (100, 50)",
		"interval: 50ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q:\n%s", want, out)
		}
	}
}
