package scoring

import (
	"sort"
	"strconv"
	"time"

	"github.com/studiva/studiva-backend/internal/model"
)

// ChallengeStats aggregates a user's submissions for one challenge.
type ChallengeStats struct {
	Correct          int
	Incorrect        int
	TotalPoints      float64
	TotalTimeSeconds int64
}

// Ratio is the throughput metric points-per-second, fixed to 4 decimal
// places. "0.0000" when no time was spent.
func (s ChallengeStats) Ratio() string {
	if s.TotalTimeSeconds <= 0 {
		return "0.0000"
	}
	return FormatPoints(s.TotalPoints / float64(s.TotalTimeSeconds))
}

// FormatPoints renders a point or ratio value as a fixed 4-decimal string,
// e.g. "12.5000". Counts and seconds stay plain integers.
func FormatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// ElapsedSeconds is the whole-second duration between start and end,
// absolute so a stored end before start still yields a non-negative time.
func ElapsedSeconds(start, end time.Time) int64 {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int64(d / time.Second)
}

// Accumulate classifies each submission against its question's designated
// correct answer and sums points and elapsed time. Correctness is derived
// here, never cached at submission time: a question without a correct
// answer, or an unknown question, counts as incorrect. Time accumulates
// for every submission regardless of correctness.
func Accumulate(answers []model.UserAnswer, questions map[uint]model.Question) ChallengeStats {
	var stats ChallengeStats
	for _, ua := range answers {
		q, ok := questions[ua.QuestionID]
		if ok && q.AnswerID != nil && *q.AnswerID == ua.AnswerID {
			stats.Correct++
			stats.TotalPoints += q.Points
		} else {
			stats.Incorrect++
		}
		stats.TotalTimeSeconds += ElapsedSeconds(ua.StartTime, ua.EndTime)
	}
	return stats
}

// MaterialPoints is the proportional-points policy: a material's point
// value scaled by the user's progress percentage.
func MaterialPoints(materialPoints, progress float64) float64 {
	return materialPoints * progress / 100
}

// DailyPoint is one day's merged point total. Date is "2006-01-02".
type DailyPoint struct {
	Date        string
	TotalPoints float64
}

// MergeDaily sums challenge and material contributions per date and returns
// them sorted ascending. Dates absent from both maps simply do not appear;
// the series is not zero-filled.
func MergeDaily(challenge, material map[string]float64) []DailyPoint {
	combined := make(map[string]float64, len(challenge)+len(material))
	for date, pts := range challenge {
		combined[date] += pts
	}
	for date, pts := range material {
		combined[date] += pts
	}
	out := make([]DailyPoint, 0, len(combined))
	for date, pts := range combined {
		out = append(out, DailyPoint{Date: date, TotalPoints: pts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// RankedUser is one leaderboard row before rendering.
type RankedUser struct {
	UserID                    uint
	Nickname                  string
	AvatarPath                *string
	TotalChallengePoints      float64
	TotalMaterialPoints       float64
	TotalChallengeTimeSeconds int64
}

// SortRanking orders rows by challenge points descending, then challenge
// time ascending (faster wins ties), then material points descending.
// User id is the final tie-break so the order is total.
func SortRanking(rows []RankedUser) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.TotalChallengePoints != b.TotalChallengePoints {
			return a.TotalChallengePoints > b.TotalChallengePoints
		}
		if a.TotalChallengeTimeSeconds != b.TotalChallengeTimeSeconds {
			return a.TotalChallengeTimeSeconds < b.TotalChallengeTimeSeconds
		}
		if a.TotalMaterialPoints != b.TotalMaterialPoints {
			return a.TotalMaterialPoints > b.TotalMaterialPoints
		}
		return a.UserID < b.UserID
	})
}
