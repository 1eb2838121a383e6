package adopters

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
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Zip       string
	About     string

	Preferences []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Adopter, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return Adopter{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.LastName) == "" {
		return Adopter{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" {
		return Adopter{}, ErrInvalidInput
	}

	a := Adopter{
		ID:          s.nextID(),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		Zip:         strings.TrimSpace(in.Zip),
		About:       strings.TrimSpace(in.About),
		Preferences: cleanList(in.Preferences),
	}

	if err := s.repo.Add(ctx, a); err != nil {
		return Adopter{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Adopter, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Adopter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteByID(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}

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
