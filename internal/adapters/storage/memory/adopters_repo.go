package memory

import (
	"context"
	"strconv"
	"sync"

	"shelter-admin/internal/domain/adopters"
)

type adopterRepo struct {
	mu    sync.RWMutex
	items []adopters.Adopter
}

func NewAdopterRepo() adopters.Repository {
	return &adopterRepo{items: make([]adopters.Adopter, 0)}
}

func (r *adopterRepo) List(ctx context.Context) ([]adopters.Adopter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adopters.Adopter, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *adopterRepo) Add(ctx context.Context, a adopters.Adopter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, a)
	return nil
}

func (r *adopterRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if strconv.FormatInt(a.ID, 10) == id {
			return a, nil
		}
	}
	return adopters.Adopter{}, adopters.ErrNotFound
}

func (r *adopterRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]adopters.Adopter, 0, len(r.items))
	for _, a := range r.items {
		if strconv.FormatInt(a.ID, 10) == id {
			continue
		}
		filtered = append(filtered, a)
	}
	if len(filtered) == len(r.items) {
		return false, nil
	}
	r.items = filtered
	return true, nil
}
