package memory

import (
	"sort"
	"sync"

	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/model"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uint]model.User
}

func NewUserRepository(users []model.User) *UserRepository {
	m := make(map[uint]model.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &UserRepository{users: m}
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFoundf("user %d", id)
	}
	return &u, nil
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
