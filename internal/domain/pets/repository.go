package pets

import "context"

// Repository persiste pets en orden de inserción.
// Los IDs se comparan por su forma string (ver GetByID/DeleteByID):
// el parámetro de ruta llega como string y así evitamos sorpresas de
// coerción con timestamps grandes.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	Add(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
