package pets

import (
	"context"
	"errors"
	"strings"

	"shelter-admin/internal/platform/idgen"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo   Repository
	nextID func() int64
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:   repo,
		nextID: idgen.NextMillis,
	}
}

type CreateInput struct {
	Name   string
	Type   string
	Breed  string
	Age    string
	Gender string
	Weight string
	Photo  string
	About  string

	Health       []string
	SpecialNeeds []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Type) == "" {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:           s.nextID(),
		Name:         strings.TrimSpace(in.Name),
		Type:         strings.TrimSpace(in.Type),
		Breed:        strings.TrimSpace(in.Breed),
		Age:          strings.TrimSpace(in.Age),
		Gender:       strings.TrimSpace(in.Gender),
		Weight:       strings.TrimSpace(in.Weight),
		Photo:        strings.TrimSpace(in.Photo),
		About:        strings.TrimSpace(in.About),
		Health:       cleanList(in.Health),
		SpecialNeeds: cleanList(in.SpecialNeeds),
	}

	if err := s.repo.Add(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteByID(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}

// cleanList descarta entradas vacías (checkboxes sin valor, etc).
func cleanList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(v))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
