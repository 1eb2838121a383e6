package memory

import (
	"context"
	"strconv"
	"sync"

	"shelter-admin/internal/domain/pets"
)

// petRepo guarda los registros en un slice para preservar el orden de
// inserción, que es el único orden del sistema.
type petRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{items: make([]pets.Pet, 0)}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *petRepo) Add(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if strconv.FormatInt(p.ID, 10) == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *petRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]pets.Pet, 0, len(r.items))
	for _, p := range r.items {
		if strconv.FormatInt(p.ID, 10) == id {
			continue
		}
		filtered = append(filtered, p)
	}
	if len(filtered) == len(r.items) {
		return false, nil
	}
	r.items = filtered
	return true, nil
}
