package jsonfile

import (
	"context"
	"path/filepath"
	"strconv"

	"shelter-admin/internal/domain/adopters"
)

type AdoptersRepo struct {
	col collection[adopters.Adopter]
}

func NewAdoptersRepo(dir string) *AdoptersRepo {
	return &AdoptersRepo{
		col: collection[adopters.Adopter]{path: filepath.Join(dir, "adopters.json")},
	}
}

var _ adopters.Repository = (*AdoptersRepo)(nil)

func (r *AdoptersRepo) List(ctx context.Context) ([]adopters.Adopter, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	return r.col.load()
}

func (r *AdoptersRepo) Add(ctx context.Context, a adopters.Adopter) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	all, err := r.col.load()
	if err != nil {
		return err
	}
	return r.col.save(append(all, a))
}

func (r *AdoptersRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	all, err := r.col.load()
	if err != nil {
		return adopters.Adopter{}, err
	}
	for _, a := range all {
		if strconv.FormatInt(a.ID, 10) == id {
			return a, nil
		}
	}
	return adopters.Adopter{}, adopters.ErrNotFound
}

func (r *AdoptersRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()

	all, err := r.col.load()
	if err != nil {
		return false, err
	}

	filtered := make([]adopters.Adopter, 0, len(all))
	for _, a := range all {
		if strconv.FormatInt(a.ID, 10) == id {
			continue
		}
		filtered = append(filtered, a)
	}
	if len(filtered) == len(all) {
		return false, nil
	}
	if err := r.col.save(filtered); err != nil {
		return false, err
	}
	return true, nil
}
