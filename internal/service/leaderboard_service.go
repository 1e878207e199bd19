package service

import (
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/repository"
	"github.com/studiva/studiva-backend/internal/scoring"
)

// DefaultLeaderboardSize is the fixed top-N the leaderboard serves.
const DefaultLeaderboardSize = 20

// LeaderboardService ranks all users by challenge points, breaking ties by
// elapsed time then material points. Recomputed on every call; users with
// no activity appear with all-zero totals.
type LeaderboardService interface {
	Top(limit int) ([]dto.LeaderboardEntryDTO, error)
}

type leaderboardService struct {
	scoreRepo repository.ScoreRepository
}

func NewLeaderboardService(scoreRepo repository.ScoreRepository) LeaderboardService {
	return &leaderboardService{scoreRepo: scoreRepo}
}

func (s *leaderboardService) Top(limit int) ([]dto.LeaderboardEntryDTO, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	rows, err := s.scoreRepo.Ranking(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, rankedToDTO(row))
	}
	return out, nil
}

func rankedToDTO(row scoring.RankedUser) dto.LeaderboardEntryDTO {
	return dto.LeaderboardEntryDTO{
		Nickname:             row.Nickname,
		AvatarPath:           row.AvatarPath,
		TotalChallengePoints: scoring.FormatPoints(row.TotalChallengePoints),
		TotalMaterialPoints:  scoring.FormatPoints(row.TotalMaterialPoints),
		TotalChallengeTime:   row.TotalChallengeTimeSeconds,
	}
}
