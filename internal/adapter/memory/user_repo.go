package memory

import (
	"context"
	"sync"

	"celora/internal/domain"
)

var _ domain.UserRepository = (*UserRepository)(nil)

// UserRepository keeps accounts in process memory.
type UserRepository struct {
	mu       sync.RWMutex
	byID     map[string]*domain.User
	byEmail  map[string]string
	byMobile map[string]string
}

// NewUserRepository creates an empty account store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:     make(map[string]*domain.User),
		byEmail:  make(map[string]string),
		byMobile: make(map[string]string),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrDuplicateAccount
	}
	if user.Mobile != "" {
		if _, exists := r.byMobile[user.Mobile]; exists {
			return domain.ErrDuplicateAccount
		}
	}
	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = user.ID
	if user.Mobile != "" {
		r.byMobile[user.Mobile] = user.ID
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.get(id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.get(id)
}

func (r *UserRepository) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byMobile[mobile]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.get(id)
}

func (r *UserRepository) UpdatePlan(ctx context.Context, id string, plan domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.Plan = plan
	return nil
}

// get returns a copy; callers never share the stored pointer.
func (r *UserRepository) get(id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *user
	return &out, nil
}
