package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/model"
)

// UserAnswerRepository is the in-memory submission ledger. The seen map
// stands in for the store's (user, attempt, question) unique index;
// attempt-less submissions are never keyed, so they may repeat.
type UserAnswerRepository struct {
	mu      sync.Mutex
	nextID  uint
	records []model.UserAnswer
	seen    map[string]struct{}
	catalog *CatalogRepository
}

func NewUserAnswerRepository(catalog *CatalogRepository) *UserAnswerRepository {
	return &UserAnswerRepository{
		nextID:  1,
		seen:    make(map[string]struct{}),
		catalog: catalog,
	}
}

func (r *UserAnswerRepository) Create(ua *model.UserAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ua.AttemptID != nil {
		key := fmt.Sprintf("%d/%s/%d", ua.UserID, *ua.AttemptID, ua.QuestionID)
		if _, dup := r.seen[key]; dup {
			return fmt.Errorf("%w: question %d already answered in this attempt",
				apperror.ErrDuplicateSubmission, ua.QuestionID)
		}
		r.seen[key] = struct{}{}
	}
	ua.ID = r.nextID
	r.nextID++
	if ua.CreatedAt.IsZero() {
		ua.CreatedAt = time.Now()
	}
	r.records = append(r.records, *ua)
	return nil
}

func (r *UserAnswerRepository) AllByUser(userID uint) ([]model.UserAnswer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.UserAnswer
	for _, ua := range r.records {
		if ua.UserID == userID {
			out = append(out, ua)
		}
	}
	sortByEndTime(out)
	return out, nil
}

func (r *UserAnswerRepository) AllByUserAndChallenge(userID, challengeID uint, attemptID *string) ([]model.UserAnswer, error) {
	questions := r.catalog.Questions()
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.UserAnswer
	for _, ua := range r.records {
		if ua.UserID != userID {
			continue
		}
		q, ok := questions[ua.QuestionID]
		if !ok || q.ChallengeID != challengeID {
			continue
		}
		if attemptID != nil && (ua.AttemptID == nil || *ua.AttemptID != *attemptID) {
			continue
		}
		out = append(out, ua)
	}
	sortByEndTime(out)
	return out, nil
}

func sortByEndTime(answers []model.UserAnswer) {
	sort.Slice(answers, func(i, j int) bool {
		return answers[i].EndTime.Before(answers[j].EndTime)
	})
}
