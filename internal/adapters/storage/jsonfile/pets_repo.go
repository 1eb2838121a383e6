package jsonfile

import (
	"context"
	"path/filepath"
	"strconv"

	"shelter-admin/internal/domain/pets"
)

type PetsRepo struct {
	col collection[pets.Pet]
}

// NewPetsRepo usa <dir>/pets.json como backing file. El archivo se
// crea en el primer acceso, no aquí.
func NewPetsRepo(dir string) *PetsRepo {
	return &PetsRepo{
		col: collection[pets.Pet]{path: filepath.Join(dir, "pets.json")},
	}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	return r.col.load()
}

func (r *PetsRepo) Add(ctx context.Context, p pets.Pet) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	all, err := r.col.load()
	if err != nil {
		return err
	}
	return r.col.save(append(all, p))
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	all, err := r.col.load()
	if err != nil {
		return pets.Pet{}, err
	}
	for _, p := range all {
		if strconv.FormatInt(p.ID, 10) == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *PetsRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	all, err := r.col.load()
	if err != nil {
		return false, err
	}

	filtered := make([]pets.Pet, 0, len(all))
	for _, p := range all {
		if strconv.FormatInt(p.ID, 10) == id {
			continue
		}
		filtered = append(filtered, p)
	}
	if len(filtered) == len(all) {
		return false, nil
	}
	if err := r.col.save(filtered); err != nil {
		return false, err
	}
	return true, nil
}
