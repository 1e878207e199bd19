// Package memory holds in-memory repository implementations. They back the
// service tests and mirror the store-level guarantees of the gorm
// implementations: per-key serialization for progress writes and composite
// uniqueness for attempt-scoped submissions.
package memory

import (
	"sync"

	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/model"
)

type CatalogRepository struct {
	mu      sync.RWMutex
	modules []model.Module
}

func NewCatalogRepository(modules []model.Module) *CatalogRepository {
	return &CatalogRepository{modules: modules}
}

func (r *CatalogRepository) FindAllModules() ([]model.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Module, len(r.modules))
	copy(out, r.modules)
	return out, nil
}

func (r *CatalogRepository) FindModuleByID(id uint) (*model.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.modules {
		if r.modules[i].ID == id {
			m := r.modules[i]
			return &m, nil
		}
	}
	return nil, apperror.NotFoundf("module %d", id)
}

func (r *CatalogRepository) FindMaterialByID(id uint) (*model.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.modules {
		for j := range r.modules[i].Materials {
			if r.modules[i].Materials[j].ID == id {
				m := r.modules[i].Materials[j]
				return &m, nil
			}
		}
	}
	return nil, apperror.NotFoundf("material %d", id)
}

func (r *CatalogRepository) FindChallengeByID(id uint) (*model.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.modules {
		for j := range r.modules[i].Challenges {
			if r.modules[i].Challenges[j].ID == id {
				c := r.modules[i].Challenges[j]
				return &c, nil
			}
		}
	}
	return nil, apperror.NotFoundf("challenge %d", id)
}

func (r *CatalogRepository) FindQuestionByID(id uint) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if q, ok := r.questionByID(id); ok {
		return &q, nil
	}
	return nil, apperror.NotFoundf("question %d", id)
}

func (r *CatalogRepository) FindAnswerByID(id uint) (*model.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.modules {
		for j := range r.modules[i].Challenges {
			for k := range r.modules[i].Challenges[j].Questions {
				for _, a := range r.modules[i].Challenges[j].Questions[k].Answers {
					if a.ID == id {
						answer := a
						return &answer, nil
					}
				}
			}
		}
	}
	return nil, apperror.NotFoundf("answer %d", id)
}

// SetCorrectAnswer repoints a question's designated correct answer. Exists
// so tests can show correctness is derived at read time, never cached.
func (r *CatalogRepository) SetCorrectAnswer(questionID uint, answerID *uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.modules {
		for j := range r.modules[i].Challenges {
			qs := r.modules[i].Challenges[j].Questions
			for k := range qs {
				if qs[k].ID == questionID {
					qs[k].AnswerID = answerID
					return
				}
			}
		}
	}
}

// Questions returns every question keyed by id, for aggregate computation.
func (r *CatalogRepository) Questions() map[uint]model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[uint]model.Question)
	for i := range r.modules {
		for j := range r.modules[i].Challenges {
			for _, q := range r.modules[i].Challenges[j].Questions {
				out[q.ID] = q
			}
		}
	}
	return out
}

// Materials returns every material keyed by id.
func (r *CatalogRepository) Materials() map[uint]model.Material {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[uint]model.Material)
	for i := range r.modules {
		for _, m := range r.modules[i].Materials {
			out[m.ID] = m
		}
	}
	return out
}

func (r *CatalogRepository) questionByID(id uint) (model.Question, bool) {
	for i := range r.modules {
		for j := range r.modules[i].Challenges {
			for _, q := range r.modules[i].Challenges[j].Questions {
				if q.ID == id {
					return q, true
				}
			}
		}
	}
	return model.Question{}, false
}
