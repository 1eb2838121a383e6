package postgres

import (
	"context"
	"database/sql"

	"shelter-admin/internal/domain/adopters"
)

type AdoptersRepo struct {
	db *sql.DB
}

func NewAdoptersRepo(db *sql.DB) *AdoptersRepo {
	return &AdoptersRepo{db: db}
}

var _ adopters.Repository = (*AdoptersRepo)(nil)

func (r *AdoptersRepo) List(ctx context.Context) ([]adopters.Adopter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, first_name, last_name, email, phone, address, city,
			state, zip, about, preferences
		FROM adopters
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adopters.Adopter, 0)
	for rows.Next() {
		a, err := scanAdopter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdoptersRepo) Add(ctx context.Context, a adopters.Adopter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adopters (
			id, first_name, last_name, email, phone, address, city,
			state, zip, about, preferences
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.FirstName,
		a.LastName,
		a.Email,
		a.Phone,
		a.Address,
		a.City,
		a.State,
		a.Zip,
		a.About,
		encodeList(a.Preferences),
	)
	return err
}

func (r *AdoptersRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, first_name, last_name, email, phone, address, city,
			state, zip, about, preferences
		FROM adopters
		WHERE id::text = $1
	`, id)

	a, err := scanAdopter(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return adopters.Adopter{}, adopters.ErrNotFound
		}
		return adopters.Adopter{}, err
	}
	return a, nil
}

func (r *AdoptersRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM adopters WHERE id::text = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanAdopter(row rowScanner) (adopters.Adopter, error) {
	var a adopters.Adopter
	var preferences string
	if err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Phone,
		&a.Address,
		&a.City,
		&a.State,
		&a.Zip,
		&a.About,
		&preferences,
	); err != nil {
		return adopters.Adopter{}, err
	}

	var err error
	if a.Preferences, err = decodeList(preferences); err != nil {
		return adopters.Adopter{}, err
	}
	return a, nil
}
