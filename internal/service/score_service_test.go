package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/service"
)

func newScoreService(f *fixture) service.ScoreService {
	return service.NewScoreService(f.users, f.catalog, f.progress, f.answers, f.scores)
}

// seedActivity gives user 1 one correct answer on q1 (10 pts, 30s), one
// incorrect answer on q2 (20s) and 50% progress on material 1 (20 pts).
func seedActivity(t *testing.T, f *fixture) {
	t.Helper()
	subSvc := newSubmissionService(f)
	if _, err := subSvc.SubmitAnswer(1, submitReq(1, 1, nil, 30)); err != nil {
		t.Fatalf("seed submit failed: %v", err)
	}
	if _, err := subSvc.SubmitAnswer(1, submitReq(2, 4, nil, 20)); err != nil {
		t.Fatalf("seed submit failed: %v", err)
	}
	if _, err := newProgressService(f).RecordProgress(1, 1, 50); err != nil {
		t.Fatalf("seed progress failed: %v", err)
	}
}

func TestGetScores(t *testing.T) {
	f := newFixture()
	seedActivity(t, f)
	svc := newScoreService(f)

	resp, err := svc.GetScores(1)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if len(resp.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(resp.Modules))
	}

	algebra := resp.Modules[0]
	if algebra.ModuleTitle != "Algebra" {
		t.Fatalf("expected Algebra first, got %q", algebra.ModuleTitle)
	}
	if len(algebra.Materials) != 2 || len(algebra.Challenges) != 1 {
		t.Fatalf("unexpected module shape: %+v", algebra)
	}

	m := algebra.Materials[0]
	if m.Points != "10.0000" || m.Progress != 50 {
		t.Fatalf("expected 10.0000 pts at 50%% progress, got %+v", m)
	}

	c := algebra.Challenges[0]
	if c.TotalPoints != "10.0000" || c.CorrectAnswers != 1 || c.IncorrectAnswers != 1 {
		t.Fatalf("unexpected challenge score: %+v", c)
	}
	if c.TotalTime != 50 || c.Ratio != "0.2000" {
		t.Fatalf("expected 50s ratio 0.2000, got %+v", c)
	}

	// The untouched module reports zeros, not absence.
	geometry := resp.Modules[1]
	if geometry.Materials[0].Points != "0.0000" || geometry.Challenges[0].TotalPoints != "0.0000" {
		t.Fatalf("expected zero scores for untouched module, got %+v", geometry)
	}
	if geometry.Challenges[0].Ratio != "0.0000" {
		t.Fatalf("expected zero ratio, got %q", geometry.Challenges[0].Ratio)
	}
}

func TestGetStatistics(t *testing.T) {
	f := newFixture()
	seedActivity(t, f)
	svc := newScoreService(f)

	stats, err := svc.GetStatistics(1)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if stats.TotalChallengePoints != "10.0000" {
		t.Fatalf("expected 10.0000 challenge points, got %q", stats.TotalChallengePoints)
	}
	if stats.TotalChallengeTime != 50 {
		t.Fatalf("expected 50s, got %d", stats.TotalChallengeTime)
	}
	if stats.TotalMaterialPoints != "10.0000" {
		t.Fatalf("expected 10.0000 material points, got %q", stats.TotalMaterialPoints)
	}
}

func TestStatisticsNotInflatedByRepeatedProgress(t *testing.T) {
	f := newFixture()
	progSvc := newProgressService(f)

	// Repeated reports for the same material must replace, never stack:
	// a second live row would double-count in every material aggregate.
	if _, err := progSvc.RecordProgress(1, 1, 40); err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if _, err := progSvc.RecordProgress(1, 1, 60); err != nil {
		t.Fatalf("progress failed: %v", err)
	}

	stats, err := newScoreService(f).GetStatistics(1)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if stats.TotalMaterialPoints != "12.0000" { // 60% of 20 pts, once
		t.Fatalf("expected 12.0000 material points, got %q", stats.TotalMaterialPoints)
	}
}

func TestGetDailyPoints(t *testing.T) {
	f := newFixture()
	subSvc := newSubmissionService(f)

	day := func(n int) time.Time { return testBase.AddDate(0, 0, n) }

	// Material progress recorded on day 0: 20% of 10 pts.
	f.progress.Now = func() time.Time { return day(0) }
	if _, err := newProgressService(f).RecordProgress(1, 2, 20); err != nil {
		t.Fatalf("progress failed: %v", err)
	}

	submitOn := func(questionID, answerID uint, n int) {
		req := submitReq(questionID, answerID, nil, 30)
		req.StartTime = day(n)
		req.EndTime = day(n).Add(30 * time.Second)
		if _, err := subSvc.SubmitAnswer(1, req); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	submitOn(1, 1, 0) // correct, +10 on day 0
	submitOn(2, 3, 1) // correct, +5 on day 1
	submitOn(3, 6, 2) // incorrect, contributes nothing

	svc := newScoreService(f)
	points, err := svc.GetDailyPoints(1, dto.DailyPointsQuery{StartDate: "2026-03-01", EndDate: "2026-03-07"})
	if err != nil {
		t.Fatalf("daily points failed: %v", err)
	}

	want := []dto.DailyPointDTO{
		{Date: "2026-03-01", TotalPoints: "12.0000"},
		{Date: "2026-03-02", TotalPoints: "5.0000"},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d days, got %d: %+v", len(want), len(points), points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("day %d: got %+v, want %+v", i, points[i], want[i])
		}
	}

	// The range is inclusive and filters both sources.
	points, err = svc.GetDailyPoints(1, dto.DailyPointsQuery{StartDate: "2026-03-02", EndDate: "2026-03-02"})
	if err != nil {
		t.Fatalf("daily points failed: %v", err)
	}
	if len(points) != 1 || points[0].Date != "2026-03-02" {
		t.Fatalf("expected only 2026-03-02, got %+v", points)
	}
}

func TestGetDailyPointsValidation(t *testing.T) {
	f := newFixture()
	svc := newScoreService(f)

	cases := []dto.DailyPointsQuery{
		{StartDate: "bogus", EndDate: "2026-03-07"},
		{StartDate: "2026-03-01", EndDate: "07-03-2026"},
		{StartDate: "2026-03-07", EndDate: "2026-03-01"},
	}
	for _, q := range cases {
		if _, err := svc.GetDailyPoints(1, q); !errors.Is(err, apperror.ErrValidation) {
			t.Fatalf("%+v: expected validation error, got %v", q, err)
		}
	}
}

func TestGetUserDetail(t *testing.T) {
	f := newFixture()
	seedActivity(t, f)
	svc := newScoreService(f)

	detail, err := svc.GetUserDetail(1)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.User.Nickname != "alice" || detail.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", detail.User)
	}
	if detail.Statistics.TotalChallengePoints != "10.0000" {
		t.Fatalf("unexpected statistics: %+v", detail.Statistics)
	}
	if len(detail.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(detail.Modules))
	}

	if _, err := svc.GetUserDetail(999); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found for unknown user, got %v", err)
	}
}

func TestGetUserOverview(t *testing.T) {
	f := newFixture()
	subSvc := newSubmissionService(f)
	progSvc := newProgressService(f)

	if _, err := progSvc.RecordProgress(1, 1, 100); err != nil { // completed, 20 pts
		t.Fatalf("progress failed: %v", err)
	}
	if _, err := subSvc.SubmitAnswer(1, submitReq(1, 1, nil, 30)); err != nil { // +10
		t.Fatalf("submit failed: %v", err)
	}

	svc := newScoreService(f)
	overview, err := svc.GetUserOverview(1)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.CompletedMaterials != 1 || overview.TotalMaterials != 3 {
		t.Fatalf("expected 1/3 materials completed, got %+v", overview)
	}
	if overview.TotalPoints != "30.0000" {
		t.Fatalf("expected 30.0000 total points, got %q", overview.TotalPoints)
	}

	algebra := overview.Modules[0]
	if algebra.TotalPoints != "30.0000" {
		t.Fatalf("expected module total 30.0000, got %q", algebra.TotalPoints)
	}
	if algebra.MaterialProgress != 50 { // (100 + 0) / 2 materials
		t.Fatalf("expected avg progress 50, got %v", algebra.MaterialProgress)
	}
}

func TestGetAllUserOverviews(t *testing.T) {
	f := newFixture()
	seedActivity(t, f)
	svc := newScoreService(f)

	overviews, err := svc.GetAllUserOverviews()
	if err != nil {
		t.Fatalf("overviews failed: %v", err)
	}
	if len(overviews) != 3 {
		t.Fatalf("expected all 3 users, got %d", len(overviews))
	}
	if overviews[0].UserID != 1 || overviews[0].TotalPoints != "20.0000" {
		t.Fatalf("unexpected first overview: %+v", overviews[0])
	}
	// Users with no activity still get full zeroed rows.
	if overviews[1].TotalPoints != "0.0000" || overviews[1].TotalMaterials != 3 {
		t.Fatalf("unexpected idle overview: %+v", overviews[1])
	}
}
