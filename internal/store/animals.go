package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
)

const animalColumns = `id, specifications, photo_url, medical_report, status`

// CreateAnimal inserts a new animal.
func CreateAnimal(ctx context.Context, q db.Conn, a *model.Animal) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO animals (`+animalColumns+`) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Specifications, a.PhotoURL, a.MedicalReport, a.Status,
	)
	if err != nil {
		return writeErr("creating animal", err)
	}
	return nil
}

// GetAnimal returns an animal by ID.
func GetAnimal(ctx context.Context, q db.Conn, id string) (*model.Animal, error) {
	a := &model.Animal{}
	err := q.QueryRowContext(ctx,
		`SELECT `+animalColumns+` FROM animals WHERE id = ?`, id,
	).Scan(&a.ID, &a.Specifications, &a.PhotoURL, &a.MedicalReport, &a.Status)
	if err != nil {
		return nil, rowErr("getting animal", err)
	}
	return a, nil
}

// ListAnimals returns all animals, optionally filtered by status.
func ListAnimals(ctx context.Context, q db.Conn, status model.AnimalStatus) ([]model.Animal, error) {
	var rows *sql.Rows
	var err error

	if status != "" {
		rows, err = q.QueryContext(ctx,
			`SELECT `+animalColumns+` FROM animals WHERE lower(status) = lower(?) ORDER BY id`, status,
		)
	} else {
		rows, err = q.QueryContext(ctx,
			`SELECT `+animalColumns+` FROM animals ORDER BY id`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing animals: %w", err)
	}
	defer rows.Close()

	animals := []model.Animal{}
	for rows.Next() {
		var a model.Animal
		if err := rows.Scan(&a.ID, &a.Specifications, &a.PhotoURL, &a.MedicalReport, &a.Status); err != nil {
			return nil, fmt.Errorf("scanning animal: %w", err)
		}
		animals = append(animals, a)
	}
	return animals, rows.Err()
}

// UpdateAnimal replaces an animal's editable fields.
func UpdateAnimal(ctx context.Context, q db.Conn, a *model.Animal) error {
	res, err := q.ExecContext(ctx,
		`UPDATE animals SET specifications = ?, medical_report = ?, status = ? WHERE id = ?`,
		a.Specifications, a.MedicalReport, a.Status, a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating animal: %w", err)
	}
	return mustAffect("updating animal", res)
}

// SetAnimalStatus changes an animal's status.
func SetAnimalStatus(ctx context.Context, q db.Conn, id string, status model.AnimalStatus) error {
	res, err := q.ExecContext(ctx,
		`UPDATE animals SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("setting animal status: %w", err)
	}
	return mustAffect("setting animal status", res)
}

// AdoptAnimal moves an animal to Adopted. An animal that is already
// Adopted is model.ErrConflict and a missing one is model.ErrNotFound.
func AdoptAnimal(ctx context.Context, q db.Conn, id string) error {
	res, err := q.ExecContext(ctx,
		`UPDATE animals SET status = ? WHERE id = ? AND lower(status) <> 'adopted'`,
		model.AnimalAdopted, id,
	)
	if err != nil {
		return fmt.Errorf("adopting animal: %w", err)
	}
	if err := mustAffect("adopting animal", res); !errors.Is(err, model.ErrNotFound) {
		return err
	}
	if _, err := GetAnimal(ctx, q, id); err != nil {
		return err
	}
	return fmt.Errorf("animal %s is already adopted: %w", id, model.ErrConflict)
}

// DeleteAnimal removes an animal. Adoption requests and reports keep
// their rows with the animal reference cleared.
func DeleteAnimal(ctx context.Context, q db.Conn, id string) error {
	res, err := q.ExecContext(ctx, `DELETE FROM animals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting animal: %w", err)
	}
	return mustAffect("deleting animal", res)
}

// SetAnimalPhoto stores an animal's photo and points photo_url at it.
func SetAnimalPhoto(ctx context.Context, q db.Conn, id string, data []byte, mime, url string) error {
	res, err := q.ExecContext(ctx,
		`UPDATE animals SET photo_url = ? WHERE id = ?`, url, id,
	)
	if err != nil {
		return fmt.Errorf("setting animal photo: %w", err)
	}
	if err := mustAffect("setting animal photo", res); err != nil {
		return err
	}

	_, err = q.ExecContext(ctx,
		`INSERT INTO animal_photos (animal_id, data, mime) VALUES (?, ?, ?)
		 ON CONFLICT (animal_id) DO UPDATE SET data = excluded.data, mime = excluded.mime`,
		id, data, mime,
	)
	if err != nil {
		return fmt.Errorf("storing animal photo: %w", err)
	}
	return nil
}

// GetAnimalPhoto returns an animal's photo data and MIME type.
func GetAnimalPhoto(ctx context.Context, q db.Conn, id string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := q.QueryRowContext(ctx,
		`SELECT data, mime FROM animal_photos WHERE animal_id = ?`, id,
	).Scan(&data, &mime)
	if err != nil {
		return nil, "", rowErr("getting animal photo", err)
	}
	return data, mime, nil
}
