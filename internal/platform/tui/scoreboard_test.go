package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-barrage/internal/storage"
)

type fakeSource struct {
	records []storage.ScoreRecord
	err     error
	limit   int
}

func (f *fakeSource) TopScores(gameID string, limit int) ([]storage.ScoreRecord, error) {
	f.limit = limit
	return f.records, f.err
}

func TestFormatFrames(t *testing.T) {
	tests := []struct {
		frames, rate int
		want         string
	}{
		{0, 50, "0:00"},
		{49, 50, "0:00"},
		{50, 50, "0:01"},
		{3000, 50, "1:00"},
		{3550, 50, "1:11"},
		{600, 60, "0:10"},
		{100, 0, "-"},
		{-1, 50, "-"},
	}

	for _, tt := range tests {
		if got := FormatFrames(tt.frames, tt.rate); got != tt.want {
			t.Errorf("FormatFrames(%d, %d) = %q, want %q", tt.frames, tt.rate, got, tt.want)
		}
	}
}

func TestScoreRows(t *testing.T) {
	when := time.Date(2026, time.March, 4, 18, 30, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreRecord{
		{Score: 120, Level: 4, Frames: 1500, CreatedAt: when},
		{Score: 30, Level: 1, Frames: 200, CreatedAt: when},
	}, 50)

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	want := []string{"#1", "120", "4", "0:30", "Mar 04 18:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q, want #2", rows[1][0])
	}
}

func TestScoreboardView(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
		want string
	}{
		{"empty", &fakeSource{}, "No scores recorded yet"},
		{"error", &fakeSource{err: errors.New("locked")}, "locked"},
		{"scores", &fakeSource{records: []storage.ScoreRecord{{Score: 777, Level: 3}}}, "777"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.src, "barrage", "Barrage", 50, 80, 24)
			view := stripANSI(m.View())
			if !strings.Contains(view, "HIGH SCORES - Barrage") {
				t.Error("title missing")
			}
			if !strings.Contains(view, tt.want) {
				t.Errorf("view does not contain %q:\n%s", tt.want, view)
			}
			if tt.src.limit != maxScores {
				t.Errorf("loaded with limit %d, want %d", tt.src.limit, maxScores)
			}
		})
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "barrage", "Barrage", 50, 80, 24)

	next, cmd := m.Update(runeKey('q'))
	sb := next.(ScoreboardModel)
	if !sb.quitting || cmd == nil {
		t.Error("q should quit the scoreboard")
	}
	if sb.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestScoreboardResize(t *testing.T) {
	m := NewScoreboardModel(nil, "barrage", "Barrage", 50, 80, 24)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	sb := next.(ScoreboardModel)
	if sb.width != 100 || sb.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", sb.width, sb.height)
	}
	if sb.help.Width != 100 {
		t.Errorf("help width = %d, want 100", sb.help.Width)
	}
}
