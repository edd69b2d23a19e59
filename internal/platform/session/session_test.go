package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type recorder struct {
	played []core.Sound
	closed bool
}

func (r *recorder) Play(s core.Sound) { r.played = append(r.played, s) }
func (r *recorder) Close()            { r.closed = true }

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func newGame(t *testing.T, store highscore.Store) *flappy.Game {
	t.Helper()
	g, err := flappy.New(config.DefaultFlappyConfig(), store, 3)
	if err != nil {
		t.Fatalf("flappy.New() error: %v", err)
	}
	return g
}

func TestSessionForwardsSounds(t *testing.T) {
	rec := &recorder{}
	s := New(Options{Game: newGame(t, nil), Audio: rec})

	if _, err := s.Step(jump()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Step(jump()); err != nil {
		t.Fatal(err)
	}

	want := []core.Sound{core.SoundSilence, core.SoundJump}
	if len(rec.played) != len(want) || rec.played[0] != want[0] || rec.played[1] != want[1] {
		t.Errorf("played = %v, want %v", rec.played, want)
	}

	s.Close()
	if !rec.closed {
		t.Error("Close did not reach the audio player")
	}
}

func TestSessionRecordsEachRunOnce(t *testing.T) {
	history, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	defer history.Close()

	s := New(Options{Game: newGame(t, nil), History: history, Player: "ann", Difficulty: "hard"})

	for run := 0; run < 2; run++ {
		if _, err := s.Step(jump()); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 600 && !s.State().GameOver; i++ {
			if _, err := s.Step(core.NewInputFrame()); err != nil {
				t.Fatal(err)
			}
		}
		for i := 0; i < 5; i++ {
			s.Step(core.NewInputFrame())
		}
	}

	runs, err := history.RecentRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("recorded %d runs, want 2", len(runs))
	}
	if runs[0].Player != "ann" || runs[0].Difficulty != "hard" || runs[0].Ticks == 0 {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestSessionStepErrorIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	s := New(Options{Game: newGame(t, highscore.NewFileStore(path))})
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Step(jump()); !errors.Is(err, highscore.ErrCorruptRecord) {
		t.Errorf("Step() error = %v, want ErrCorruptRecord", err)
	}
}
