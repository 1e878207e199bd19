package memory

import (
	"sort"

	"github.com/studiva/studiva-backend/internal/repository"
	"github.com/studiva/studiva-backend/internal/scoring"
)

// ScoreRepository reproduces the aggregation query layer in Go over the
// other in-memory stores.
type ScoreRepository struct {
	catalog  *CatalogRepository
	users    *UserRepository
	progress *MaterialProgressRepository
	answers  *UserAnswerRepository
}

func NewScoreRepository(
	catalog *CatalogRepository,
	users *UserRepository,
	progress *MaterialProgressRepository,
	answers *UserAnswerRepository,
) *ScoreRepository {
	return &ScoreRepository{catalog: catalog, users: users, progress: progress, answers: answers}
}

func (r *ScoreRepository) ChallengeTotals(userID uint) (float64, int64, error) {
	answers, err := r.answers.AllByUser(userID)
	if err != nil {
		return 0, 0, err
	}
	stats := scoring.Accumulate(answers, r.catalog.Questions())
	return stats.TotalPoints, stats.TotalTimeSeconds, nil
}

func (r *ScoreRepository) MaterialPointsTotal(userID uint) (float64, error) {
	recs, err := r.progress.AllByUser(userID)
	if err != nil {
		return 0, err
	}
	materials := r.catalog.Materials()
	var total float64
	for _, rec := range recs {
		if m, ok := materials[rec.MaterialID]; ok {
			total += scoring.MaterialPoints(m.Points, rec.Progress)
		}
	}
	return total, nil
}

func (r *ScoreRepository) DailyChallengePoints(userID uint, startDate, endDate string) ([]repository.DateSum, error) {
	answers, err := r.answers.AllByUser(userID)
	if err != nil {
		return nil, err
	}
	questions := r.catalog.Questions()
	buckets := make(map[string]float64)
	for _, ua := range answers {
		q, ok := questions[ua.QuestionID]
		if !ok || q.AnswerID == nil || *q.AnswerID != ua.AnswerID {
			continue
		}
		date := ua.EndTime.Format("2006-01-02")
		if date < startDate || date > endDate {
			continue
		}
		buckets[date] += q.Points
	}
	return toDateSums(buckets), nil
}

func (r *ScoreRepository) DailyMaterialPoints(userID uint, startDate, endDate string) ([]repository.DateSum, error) {
	recs, err := r.progress.AllByUser(userID)
	if err != nil {
		return nil, err
	}
	materials := r.catalog.Materials()
	buckets := make(map[string]float64)
	for _, rec := range recs {
		m, ok := materials[rec.MaterialID]
		if !ok {
			continue
		}
		date := rec.UpdatedAt.Format("2006-01-02")
		if date < startDate || date > endDate {
			continue
		}
		buckets[date] += scoring.MaterialPoints(m.Points, rec.Progress)
	}
	return toDateSums(buckets), nil
}

func (r *ScoreRepository) Ranking(limit int) ([]scoring.RankedUser, error) {
	users, err := r.users.FindAll()
	if err != nil {
		return nil, err
	}
	rows := make([]scoring.RankedUser, 0, len(users))
	for _, u := range users {
		points, seconds, err := r.ChallengeTotals(u.ID)
		if err != nil {
			return nil, err
		}
		materialPoints, err := r.MaterialPointsTotal(u.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, scoring.RankedUser{
			UserID:                    u.ID,
			Nickname:                  u.Nickname,
			AvatarPath:                u.AvatarPath,
			TotalChallengePoints:      points,
			TotalMaterialPoints:       materialPoints,
			TotalChallengeTimeSeconds: seconds,
		})
	}
	scoring.SortRanking(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func toDateSums(buckets map[string]float64) []repository.DateSum {
	out := make([]repository.DateSum, 0, len(buckets))
	for date, points := range buckets {
		out = append(out, repository.DateSum{Date: date, Points: points})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
