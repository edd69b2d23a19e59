package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestRunRows(t *testing.T) {
	runs := []storage.Run{
		{Player: "alice", Score: 12, Ticks: 900, Difficulty: "hard", CreatedAt: time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)},
		{Player: "bob", Score: 3, Ticks: 30},
	}

	rows := runRows(runs, 60)

	want := [][]string{
		{"#1", "alice", "12", "15s", "hard", "Mar 04 05:06"},
		{"#2", "bob", "3", "500ms", "-"},
	}
	for i, w := range want {
		for j, cell := range w {
			if rows[i][j] != cell {
				t.Errorf("rows[%d][%d] = %q, want %q", i, j, rows[i][j], cell)
			}
		}
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks, rate int
		want        string
	}{
		{0, 60, "0s"},
		{90, 60, "1.5s"},
		{3600, 60, "1m0s"},
		{60, 0, "1s"}, // Zero rate falls back to 60
	}
	for _, tt := range tests {
		if got := FormatTicks(tt.ticks, tt.rate); got != tt.want {
			t.Errorf("FormatTicks(%d, %d) = %q, want %q", tt.ticks, tt.rate, got, tt.want)
		}
	}
}

func TestScoreboardToggleView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	defer store.Close()
	for _, score := range []int{5, 9, 1} {
		if _, err := store.SaveRun(storage.Run{Player: "p", Score: score}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 60, 100, 30)
	if m.view != ViewTop || m.runs[0].Score != 9 {
		t.Fatalf("initial view = %v with first score %d, want top runs led by 9", m.view, m.runs[0].Score)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != ViewRecent || m.runs[0].Score != 1 {
		t.Errorf("after tab: view %v, first score %d; want recent runs led by 1", m.view, m.runs[0].Score)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("title does not follow the view")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 80, 24)

	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("view = %q", m.View())
	}
}

func TestPlainScores(t *testing.T) {
	out := PlainScores([]storage.Run{{Player: "alice", Score: 7, Ticks: 120}}, 60)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "RANK") || !strings.Contains(lines[1], "alice") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if PlainScores(nil, 60) != "No runs recorded yet.\n" {
		t.Error("empty history message missing")
	}
}
