package adopters

import "context"

// Repository persiste adopters en orden de inserción.
// Igual que en pets, los IDs se comparan por su forma string.
type Repository interface {
	List(ctx context.Context) ([]Adopter, error)
	Add(ctx context.Context, a Adopter) error
	GetByID(ctx context.Context, id string) (Adopter, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
