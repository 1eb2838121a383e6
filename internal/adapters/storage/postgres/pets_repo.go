package postgres

import (
	"context"
	"database/sql"

	"shelter-admin/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	// id es el timestamp de alta, así que ordenar por id = orden de inserción.
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, type, breed, age, gender, weight, photo, about,
			health, special_needs
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Add(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, type, breed, age, gender, weight, photo, about,
			health, special_needs
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		p.ID,
		p.Name,
		p.Type,
		p.Breed,
		p.Age,
		p.Gender,
		p.Weight,
		p.Photo,
		p.About,
		encodeList(p.Health),
		encodeList(p.SpecialNeeds),
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	// id::text preserva la semántica de comparar IDs como strings.
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, type, breed, age, gender, weight, photo, about,
			health, special_needs
		FROM pets
		WHERE id::text = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id::text = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var health, specialNeeds string
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Breed,
		&p.Age,
		&p.Gender,
		&p.Weight,
		&p.Photo,
		&p.About,
		&health,
		&specialNeeds,
	); err != nil {
		return pets.Pet{}, err
	}

	var err error
	if p.Health, err = decodeList(health); err != nil {
		return pets.Pet{}, err
	}
	if p.SpecialNeeds, err = decodeList(specialNeeds); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}
