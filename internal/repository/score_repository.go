package repository

import (
	"github.com/studiva/studiva-backend/internal/scoring"
	"gorm.io/gorm"
)

// DateSum is one date bucket of a grouped point sum. Date is "2006-01-02".
type DateSum struct {
	Date   string
	Points float64
}

// ScoreRepository is the aggregation query layer shared by the scoring
// engine and the leaderboard ranker: grouped, joined sums pushed down to
// the store instead of per-entity fan-out queries.
type ScoreRepository interface {
	// ChallengeTotals sums a user's correct-answer points and total elapsed
	// seconds across all submissions.
	ChallengeTotals(userID uint) (points float64, seconds int64, err error)
	// MaterialPointsTotal sums progress-proportional material points.
	MaterialPointsTotal(userID uint) (float64, error)
	// DailyChallengePoints buckets correct-submission points by the date of
	// end_time, inclusive window, ascending; empty dates are absent.
	DailyChallengePoints(userID uint, startDate, endDate string) ([]DateSum, error)
	// DailyMaterialPoints buckets proportional material points by the date
	// of the progress record's last update.
	DailyMaterialPoints(userID uint, startDate, endDate string) ([]DateSum, error)
	// Ranking returns every user with zero-coalesced totals, ordered by
	// challenge points desc, challenge time asc, material points desc.
	Ranking(limit int) ([]scoring.RankedUser, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) ChallengeTotals(userID uint) (float64, int64, error) {
	var row struct {
		Points  float64
		Seconds int64
	}
	err := r.db.Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN q.answer_id IS NOT NULL AND ua.answer_id = q.answer_id THEN q.points ELSE 0 END), 0) AS points,
			COALESCE(SUM(FLOOR(ABS(EXTRACT(EPOCH FROM (ua.end_time - ua.start_time))))), 0)::bigint AS seconds
		FROM user_answers ua
		JOIN questions q ON q.id = ua.question_id AND q.deleted_at IS NULL
		WHERE ua.user_id = ?`, userID).Scan(&row).Error
	return row.Points, row.Seconds, err
}

func (r *scoreRepository) MaterialPointsTotal(userID uint) (float64, error) {
	var total float64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(mp.progress / 100 * m.points), 0)
		FROM material_progress mp
		JOIN materials m ON m.id = mp.material_id AND m.deleted_at IS NULL
		WHERE mp.user_id = ?`, userID).Scan(&total).Error
	return total, err
}

func (r *scoreRepository) DailyChallengePoints(userID uint, startDate, endDate string) ([]DateSum, error) {
	var rows []DateSum
	err := r.db.Raw(`
		SELECT to_char(ua.end_time::date, 'YYYY-MM-DD') AS date, SUM(q.points) AS points
		FROM user_answers ua
		JOIN questions q ON q.id = ua.question_id AND q.deleted_at IS NULL
		WHERE ua.user_id = ?
		  AND q.answer_id IS NOT NULL AND ua.answer_id = q.answer_id
		  AND ua.end_time::date BETWEEN ?::date AND ?::date
		GROUP BY ua.end_time::date
		ORDER BY date ASC`, userID, startDate, endDate).Scan(&rows).Error
	return rows, err
}

func (r *scoreRepository) DailyMaterialPoints(userID uint, startDate, endDate string) ([]DateSum, error) {
	var rows []DateSum
	err := r.db.Raw(`
		SELECT to_char(mp.updated_at::date, 'YYYY-MM-DD') AS date, SUM(mp.progress / 100 * m.points) AS points
		FROM material_progress mp
		JOIN materials m ON m.id = mp.material_id AND m.deleted_at IS NULL
		WHERE mp.user_id = ?
		  AND mp.updated_at::date BETWEEN ?::date AND ?::date
		GROUP BY mp.updated_at::date
		ORDER BY date ASC`, userID, startDate, endDate).Scan(&rows).Error
	return rows, err
}

func (r *scoreRepository) Ranking(limit int) ([]scoring.RankedUser, error) {
	var rows []scoring.RankedUser
	err := r.db.Raw(`
		SELECT
			u.id AS user_id,
			u.nickname,
			u.avatar_path,
			COALESCE(ch.points, 0) AS total_challenge_points,
			COALESCE(ch.seconds, 0) AS total_challenge_time_seconds,
			COALESCE(mt.points, 0) AS total_material_points
		FROM users u
		LEFT JOIN (
			SELECT ua.user_id,
				SUM(CASE WHEN q.answer_id IS NOT NULL AND ua.answer_id = q.answer_id THEN q.points ELSE 0 END) AS points,
				SUM(FLOOR(ABS(EXTRACT(EPOCH FROM (ua.end_time - ua.start_time)))))::bigint AS seconds
			FROM user_answers ua
			JOIN questions q ON q.id = ua.question_id AND q.deleted_at IS NULL
			GROUP BY ua.user_id
		) ch ON ch.user_id = u.id
		LEFT JOIN (
			SELECT mp.user_id, SUM(mp.progress / 100 * m.points) AS points
			FROM material_progress mp
			JOIN materials m ON m.id = mp.material_id AND m.deleted_at IS NULL
			GROUP BY mp.user_id
		) mt ON mt.user_id = u.id
		WHERE u.deleted_at IS NULL
		ORDER BY total_challenge_points DESC, total_challenge_time_seconds ASC, total_material_points DESC, u.id ASC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}
