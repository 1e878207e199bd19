package service_test

import (
	"testing"

	"github.com/studiva/studiva-backend/internal/service"
)

func newLeaderboardService(f *fixture) service.LeaderboardService {
	return service.NewLeaderboardService(f.scores)
}

func TestLeaderboardOrdering(t *testing.T) {
	f := newFixture()
	subSvc := newSubmissionService(f)

	// Alice and Bob both earn 10 points on q1; Bob is slower.
	if _, err := subSvc.SubmitAnswer(1, submitReq(1, 1, nil, 30)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := subSvc.SubmitAnswer(2, submitReq(1, 1, nil, 60)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	entries, err := newLeaderboardService(f).Top(0)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].Nickname != "alice" || entries[1].Nickname != "bob" {
		t.Fatalf("expected alice then bob on the time tiebreak, got %+v", entries[:2])
	}
	if entries[0].TotalChallengePoints != "10.0000" || entries[0].TotalChallengeTime != 30 {
		t.Fatalf("unexpected leader: %+v", entries[0])
	}

	// Zero-activity users still appear, all zeros.
	idle := entries[2]
	if idle.Nickname != "root" || idle.TotalChallengePoints != "0.0000" || idle.TotalMaterialPoints != "0.0000" {
		t.Fatalf("unexpected idle entry: %+v", idle)
	}
}

func TestLeaderboardMaterialTiebreak(t *testing.T) {
	f := newFixture()

	// Equal challenge standings; Bob leads on material points.
	if _, err := newProgressService(f).RecordProgress(2, 1, 50); err != nil {
		t.Fatalf("progress failed: %v", err)
	}

	entries, err := newLeaderboardService(f).Top(0)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if entries[0].Nickname != "bob" || entries[0].TotalMaterialPoints != "10.0000" {
		t.Fatalf("expected bob first on material points, got %+v", entries[0])
	}
}

func TestLeaderboardLimit(t *testing.T) {
	f := newFixture()

	entries, err := newLeaderboardService(f).Top(2)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}
