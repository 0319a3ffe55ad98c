package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/storage"
)

func TestWriteRoundListsEveryMistake(t *testing.T) {
	rec := storage.RoundRecord{
		ID:         "round-1",
		Difficulty: "medium",
		Score:      25,
		Lives:      0,
		Processed:  8,
		Total:      13,
		CreatedAt:  time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		Mistakes: []storage.MistakeRecord{
			{Label: "Plastic cup", Reason: "Plastic", Count: 2},
			{Label: "Foil", Reason: "Metal", Count: 1},
		},
	}

	var buf bytes.Buffer
	writeRound(&buf, rec)
	out := buf.String()
	for _, want := range []string{"Round round-1", "medium", "lost", "8/13", "2026-03-01 12:30", "Plastic cup", "Foil"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	rec.Mistakes = nil
	rec.Cleared = true
	writeRound(&buf, rec)
	if !strings.Contains(buf.String(), "No trash caught") || !strings.Contains(buf.String(), "cleared") {
		t.Errorf("clean round output:\n%s", buf.String())
	}
}

func TestWriteRecentRounds(t *testing.T) {
	var buf bytes.Buffer
	writeRecentRounds(&buf, nil)
	if !strings.Contains(buf.String(), "No rounds recorded yet.") {
		t.Errorf("empty output:\n%s", buf.String())
	}

	buf.Reset()
	writeRecentRounds(&buf, []storage.RoundRecord{
		{ID: "a", Difficulty: "easy", Score: 40, Cleared: true},
		{ID: "b", Difficulty: "hard", Score: 5},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[4], "easy") || !strings.Contains(lines[5], "hard") {
		t.Errorf("rounds out of order:\n%s", buf.String())
	}
}

func TestWriteStatsOrder(t *testing.T) {
	cat := catalog.Builtin()
	keys := cat.Keys()
	stats := map[string]*storage.DifficultyStats{
		"retired": {Difficulty: "retired", RoundsCount: 1},
		keys[1]:   {Difficulty: keys[1], RoundsCount: 2, HighScore: 50, AvgScore: 35},
		keys[0]:   {Difficulty: keys[0], RoundsCount: 4, Cleared: 3},
	}

	var buf bytes.Buffer
	writeStats(&buf, cat, stats)
	out := buf.String()
	first := strings.Index(out, "  "+keys[0]+" ")
	second := strings.Index(out, "  "+keys[1]+" ")
	retired := strings.Index(out, "  retired ")
	if first < 0 || second < 0 || retired < 0 {
		t.Fatalf("missing rows:\n%s", out)
	}
	if !(first < second && second < retired) {
		t.Errorf("rows should follow catalog order, then unknown keys:\n%s", out)
	}
	if !strings.Contains(out, "35.0") {
		t.Errorf("average missing:\n%s", out)
	}

	buf.Reset()
	writeStats(&buf, cat, nil)
	if !strings.Contains(buf.String(), "No rounds recorded yet.") {
		t.Errorf("empty output:\n%s", buf.String())
	}
}
