package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestNewPipeTopHeightInRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	lo, hi := cfg.TopHeightRange()
	rng := rand.New(rand.NewSource(7))

	seenLo, seenHi := false, false
	for i := 0; i < 5000; i++ {
		p := NewPipe(800, rng, cfg)
		if p.TopHeight < lo || p.TopHeight > hi {
			t.Fatalf("TopHeight %d outside [%d, %d]", p.TopHeight, lo, hi)
		}
		seenLo = seenLo || p.TopHeight == lo
		seenHi = seenHi || p.TopHeight == hi
	}
	if !seenLo || !seenHi {
		t.Errorf("range bounds not both reached (lo=%v hi=%v); range must be inclusive", seenLo, seenHi)
	}
}

func TestNewPipeSingleValueRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.Gap = 300 // 450 - 300 - 100 = 50 = min_top

	p := NewPipe(0, rand.New(rand.NewSource(1)), cfg)
	if p.TopHeight != 50 {
		t.Errorf("TopHeight = %d, want 50", p.TopHeight)
	}
}

func TestPipeUpdateScrollsLeft(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipe(800, rand.New(rand.NewSource(1)), cfg)

	const ticks = 100
	for i := 0; i < ticks; i++ {
		p.Update(2.5)
	}

	if want := 800 - 2.5*ticks; p.X != want {
		t.Errorf("x = %v, want %v", p.X, want)
	}
}

func TestPipeRects(t *testing.T) {
	p := Pipe{X: 300, Width: 80, TopHeight: 120, Gap: 190, ScreenH: 450}

	if got, want := p.TopRect(), core.NewRect(300, 0, 80, 120); got != want {
		t.Errorf("TopRect() = %+v, want %+v", got, want)
	}
	if got, want := p.BottomRect(), core.NewRect(300, 310, 80, 140); got != want {
		t.Errorf("BottomRect() = %+v, want %+v", got, want)
	}
}

func TestPipeDrawFlipsTop(t *testing.T) {
	p := Pipe{X: 300, Width: 80, TopHeight: 120, Gap: 190, ScreenH: 450}
	f := core.NewFrame(800, 450, core.ColorSkyBlue)
	p.Draw(f)

	if len(f.Primitives) != 2 {
		t.Fatalf("got %d primitives, want 2", len(f.Primitives))
	}
	if !f.Primitives[0].FlipV || f.Primitives[1].FlipV {
		t.Error("only the top obstacle should be flipped")
	}
	for _, prim := range f.Primitives {
		if prim.Asset != AssetPipe || prim.Fallback != core.PrimFill || prim.Stroke != core.ColorBlack {
			t.Errorf("unexpected pipe primitive %+v", prim)
		}
	}
}

func TestPipeManagerResetPlacesFirstPipe(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(rand.New(rand.NewSource(1)), cfg)

	pipes := pm.Pipes()
	if len(pipes) != 1 {
		t.Fatalf("got %d pipes, want 1", len(pipes))
	}
	if pipes[0].X != 1000 {
		t.Errorf("first pipe x = %v, want 1000", pipes[0].X)
	}
}

func TestPipeManagerSpawnsAtSpacing(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(rand.New(rand.NewSource(1)), cfg)

	// First pipe at 1000 must travel below 800 - 280 = 520 before the next spawn
	for pm.pipes[0].X >= 522.5 {
		pm.Advance(2.5)
		if len(pm.Pipes()) != 1 {
			t.Fatalf("spawned early with first pipe at x=%v", pm.pipes[0].X)
		}
	}
	pm.Advance(2.5)

	if len(pm.Pipes()) != 2 {
		t.Fatalf("got %d pipes, want 2", len(pm.Pipes()))
	}
	tail, _ := pm.Tail()
	if tail.X != 800 {
		t.Errorf("new pipe x = %v, want 800", tail.X)
	}
}

func TestPipeManagerDespawnsOffscreen(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(rand.New(rand.NewSource(1)), cfg)
	pm.pipes = []Pipe{
		{X: -77.5, Width: 80, TopHeight: 100, Gap: 190, ScreenH: 450},
		{X: 700, Width: 80, TopHeight: 100, Gap: 190, ScreenH: 450},
	}

	pm.Advance(2.5)

	pipes := pm.Pipes()
	if len(pipes) != 1 || pipes[0].X != 697.5 {
		t.Errorf("pipes after advance = %+v, want only the one at 697.5", pipes)
	}
}

func TestPipeManagerSpawnsIntoEmptyCollection(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(rand.New(rand.NewSource(1)), cfg)
	pm.pipes = pm.pipes[:0]

	pm.Advance(2.5)

	if tail, ok := pm.Tail(); !ok || tail.X != 800 {
		t.Errorf("Tail() = %+v, %v; want a pipe at 800", tail, ok)
	}
}

func TestPipeManagerCollides(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(rand.New(rand.NewSource(1)), cfg)
	pm.pipes = []Pipe{{X: 150, Width: 80, TopHeight: 100, Gap: 190, ScreenH: 450}}

	tests := []struct {
		name string
		rect core.Rect
		want bool
	}{
		{"inside gap", core.NewRect(150, 150, 50, 50), false},
		{"hits top", core.NewRect(150, 90, 50, 50), true},
		{"hits bottom", core.NewRect(150, 270, 50, 50), true},
		{"touching top edge", core.NewRect(150, 100, 50, 50), false},
		{"left of pipe", core.NewRect(50, 0, 50, 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pm.Collides(tt.rect); got != tt.want {
				t.Errorf("Collides(%+v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestPipeManagerMarkPassedOnce(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(rand.New(rand.NewSource(1)), cfg)
	pm.pipes = []Pipe{
		{X: 60, Width: 80, TopHeight: 100, Gap: 190, ScreenH: 450},  // 140 < 150
		{X: 70, Width: 80, TopHeight: 100, Gap: 190, ScreenH: 450},  // 150, not strictly left
		{X: 400, Width: 80, TopHeight: 100, Gap: 190, ScreenH: 450}, // ahead
	}

	if got := pm.MarkPassed(150); got != 1 {
		t.Errorf("first MarkPassed = %d, want 1", got)
	}
	if got := pm.MarkPassed(150); got != 0 {
		t.Errorf("second MarkPassed = %d, want 0", got)
	}
	if !pm.pipes[0].Passed || pm.pipes[1].Passed || pm.pipes[2].Passed {
		t.Errorf("passed flags = %v %v %v, want true false false",
			pm.pipes[0].Passed, pm.pipes[1].Passed, pm.pipes[2].Passed)
	}
}

func TestPipeManagerDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewPipeManager(rand.New(rand.NewSource(99)), cfg)
	b := NewPipeManager(rand.New(rand.NewSource(99)), cfg)

	for i := 0; i < 1000; i++ {
		a.Advance(2.5)
		b.Advance(2.5)
	}

	pa, pb := a.Pipes(), b.Pipes()
	if len(pa) != len(pb) {
		t.Fatalf("pipe counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
