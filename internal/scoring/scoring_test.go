package scoring_test

import (
	"testing"
	"time"

	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/scoring"
)

func uintPtr(v uint) *uint { return &v }

func TestFormatPoints(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0000"},
		{12.5, "12.5000"},
		{100, "100.0000"},
		{10.0 / 30.0, "0.3333"},
		{0.00004, "0.0000"},
	}
	for _, tc := range cases {
		if got := scoring.FormatPoints(tc.in); got != tc.want {
			t.Fatalf("FormatPoints(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRatio(t *testing.T) {
	cases := []struct {
		name  string
		stats scoring.ChallengeStats
		want  string
	}{
		{"zero time", scoring.ChallengeStats{TotalPoints: 10}, "0.0000"},
		{"negative time", scoring.ChallengeStats{TotalPoints: 10, TotalTimeSeconds: -5}, "0.0000"},
		{"ten over thirty", scoring.ChallengeStats{TotalPoints: 10, TotalTimeSeconds: 30}, "0.3333"},
		{"whole", scoring.ChallengeStats{TotalPoints: 30, TotalTimeSeconds: 15}, "2.0000"},
	}
	for _, tc := range cases {
		if got := tc.stats.Ratio(); got != tc.want {
			t.Fatalf("%s: ratio = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestElapsedSeconds(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if got := scoring.ElapsedSeconds(base, base.Add(90*time.Second)); got != 90 {
		t.Fatalf("expected 90 seconds, got %d", got)
	}
	// Reversed timestamps still count as positive time.
	if got := scoring.ElapsedSeconds(base.Add(90*time.Second), base); got != 90 {
		t.Fatalf("expected 90 seconds for reversed interval, got %d", got)
	}
	// Sub-second remainders truncate.
	if got := scoring.ElapsedSeconds(base, base.Add(1900*time.Millisecond)); got != 1 {
		t.Fatalf("expected 1 second, got %d", got)
	}
}

func TestAccumulate(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	questions := map[uint]model.Question{
		1: {ID: 1, Points: 10, AnswerID: uintPtr(1)},
		2: {ID: 2, Points: 5, AnswerID: uintPtr(3)},
		3: {ID: 3, Points: 7, AnswerID: nil}, // no correct answer assigned
	}
	answers := []model.UserAnswer{
		{QuestionID: 1, AnswerID: 1, StartTime: base, EndTime: base.Add(30 * time.Second)},
		{QuestionID: 2, AnswerID: 4, StartTime: base, EndTime: base.Add(20 * time.Second)},
		{QuestionID: 3, AnswerID: 5, StartTime: base, EndTime: base.Add(10 * time.Second)},
		{QuestionID: 99, AnswerID: 1, StartTime: base, EndTime: base.Add(5 * time.Second)}, // unknown question
	}

	stats := scoring.Accumulate(answers, questions)
	if stats.Correct != 1 || stats.Incorrect != 3 {
		t.Fatalf("expected 1 correct / 3 incorrect, got %d / %d", stats.Correct, stats.Incorrect)
	}
	if stats.TotalPoints != 10 {
		t.Fatalf("expected 10 points, got %v", stats.TotalPoints)
	}
	// Time accumulates for every submission, right or wrong.
	if stats.TotalTimeSeconds != 65 {
		t.Fatalf("expected 65 seconds, got %d", stats.TotalTimeSeconds)
	}
}

func TestMaterialPoints(t *testing.T) {
	if got := scoring.MaterialPoints(20, 50); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
	if got := scoring.MaterialPoints(20, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := scoring.MaterialPoints(12.5, 100); got != 12.5 {
		t.Fatalf("expected 12.5, got %v", got)
	}
}

func TestMergeDaily(t *testing.T) {
	merged := scoring.MergeDaily(
		map[string]float64{"2026-03-01": 10, "2026-03-02": 5},
		map[string]float64{"2026-03-01": 2, "2026-03-04": 1},
	)
	want := []scoring.DailyPoint{
		{Date: "2026-03-01", TotalPoints: 12},
		{Date: "2026-03-02", TotalPoints: 5},
		{Date: "2026-03-04", TotalPoints: 1},
	}
	if len(merged) != len(want) {
		t.Fatalf("expected %d days, got %d: %+v", len(want), len(merged), merged)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Fatalf("day %d: got %+v, want %+v", i, merged[i], want[i])
		}
	}
}

func TestSortRanking(t *testing.T) {
	rows := []scoring.RankedUser{
		{UserID: 1, TotalChallengePoints: 10, TotalChallengeTimeSeconds: 60},
		{UserID: 2, TotalChallengePoints: 10, TotalChallengeTimeSeconds: 30},
		{UserID: 3, TotalChallengePoints: 25, TotalChallengeTimeSeconds: 300},
		{UserID: 4, TotalChallengePoints: 10, TotalChallengeTimeSeconds: 60, TotalMaterialPoints: 8},
		{UserID: 5},
	}
	scoring.SortRanking(rows)

	wantOrder := []uint{3, 2, 4, 1, 5}
	for i, want := range wantOrder {
		if rows[i].UserID != want {
			t.Fatalf("position %d: expected user %d, got %d", i, want, rows[i].UserID)
		}
	}
}
