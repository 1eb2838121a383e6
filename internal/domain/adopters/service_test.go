package adopters

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

type testRepo struct {
	items []Adopter
}

func (r *testRepo) List(ctx context.Context) ([]Adopter, error) {
	out := make([]Adopter, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) Add(ctx context.Context, a Adopter) error {
	r.items = append(r.items, a)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Adopter, error) {
	for _, a := range r.items {
		if strconv.FormatInt(a.ID, 10) == id {
			return a, nil
		}
	}
	return Adopter{}, ErrNotFound
}

func (r *testRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	filtered := make([]Adopter, 0, len(r.items))
	for _, a := range r.items {
		if strconv.FormatInt(a.ID, 10) == id {
			continue
		}
		filtered = append(filtered, a)
	}
	changed := len(filtered) != len(r.items)
	r.items = filtered
	return changed, nil
}

func TestCreate_RequiredFields(t *testing.T) {
	svc := NewService(&testRepo{})

	cases := []CreateInput{
		{FirstName: "", LastName: "Reyes", Email: "a@b.c"},
		{FirstName: "Ana", LastName: "", Email: "a@b.c"},
		{FirstName: "Ana", LastName: "Reyes", Email: ""},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	svc := NewService(&testRepo{})
	svc.nextID = func() int64 { return 42 }

	a, err := svc.Create(context.Background(), CreateInput{
		FirstName:   "Ana",
		LastName:    "Reyes",
		Email:       "ana@example.com",
		Preferences: []string{"cats", ""},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID != 42 {
		t.Fatalf("expected assigned id, got %d", a.ID)
	}
	if len(a.Preferences) != 1 {
		t.Fatalf("expected cleaned preferences, got %v", a.Preferences)
	}

	got, err := svc.GetByID(context.Background(), "42")
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got.Email != "ana@example.com" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
