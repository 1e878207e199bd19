package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/repository"
)

// MaterialProgressRepository serializes every transaction under one mutex,
// which trivially satisfies the per-key atomicity the write path needs.
type MaterialProgressRepository struct {
	mu      sync.Mutex
	nextID  uint
	records []model.MaterialProgress

	// Now is the clock for created/updated timestamps; tests override it to
	// pin daily bucketing to known dates.
	Now func() time.Time
}

func NewMaterialProgressRepository() *MaterialProgressRepository {
	return &MaterialProgressRepository{nextID: 1, Now: time.Now}
}

// progressTx is the unlocked view handed to InTx callbacks.
type progressTx struct {
	r *MaterialProgressRepository
}

func (r *MaterialProgressRepository) InTx(fn func(repository.MaterialProgressRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&progressTx{r: r})
}

func (r *MaterialProgressRepository) FindForUpdate(userID, materialID uint) ([]model.MaterialProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findKey(userID, materialID), nil
}

func (r *MaterialProgressRepository) ReplaceAll(userID, materialID uint, rec *model.MaterialProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replaceAll(userID, materialID, rec)
}

func (r *MaterialProgressRepository) Best(userID, materialID uint) (*model.MaterialProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.best(userID, materialID), nil
}

func (r *MaterialProgressRepository) AllByUser(userID uint) ([]model.MaterialProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MaterialProgress
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MaterialID != out[j].MaterialID {
			return out[i].MaterialID < out[j].MaterialID
		}
		return out[i].Progress > out[j].Progress
	})
	return out, nil
}

func (t *progressTx) InTx(fn func(repository.MaterialProgressRepository) error) error {
	return fn(t) // already inside the transaction
}

func (t *progressTx) FindForUpdate(userID, materialID uint) ([]model.MaterialProgress, error) {
	return t.r.findKey(userID, materialID), nil
}

func (t *progressTx) ReplaceAll(userID, materialID uint, rec *model.MaterialProgress) error {
	return t.r.replaceAll(userID, materialID, rec)
}

func (t *progressTx) Best(userID, materialID uint) (*model.MaterialProgress, error) {
	return t.r.best(userID, materialID), nil
}

func (t *progressTx) AllByUser(userID uint) ([]model.MaterialProgress, error) {
	var out []model.MaterialProgress
	for _, rec := range t.r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *MaterialProgressRepository) findKey(userID, materialID uint) []model.MaterialProgress {
	var out []model.MaterialProgress
	for _, rec := range r.records {
		if rec.UserID == userID && rec.MaterialID == materialID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Progress != out[j].Progress {
			return out[i].Progress > out[j].Progress
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func (r *MaterialProgressRepository) replaceAll(userID, materialID uint, rec *model.MaterialProgress) error {
	kept := r.records[:0]
	for _, existing := range r.records {
		if existing.UserID != userID || existing.MaterialID != materialID {
			kept = append(kept, existing)
		}
	}
	r.records = kept

	rec.ID = r.nextID
	r.nextID++
	now := r.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.records = append(r.records, *rec)
	return nil
}

func (r *MaterialProgressRepository) best(userID, materialID uint) *model.MaterialProgress {
	recs := r.findKey(userID, materialID)
	if len(recs) == 0 {
		return nil
	}
	best := recs[0]
	return &best
}
