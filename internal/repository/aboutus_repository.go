package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// AboutUsRepository defines persistence access for the about-us page.
type AboutUsRepository interface {
	Save(ctx context.Context, entry *domain.AboutUs) error
	GetByID(ctx context.Context, id int64) (*domain.AboutUs, error)
	List(ctx context.Context) ([]domain.AboutUs, error)
}

type aboutUsRepository struct {
	pool *pgxpool.Pool
}

// NewAboutUsRepository returns a Postgres-backed implementation.
func NewAboutUsRepository(pool *pgxpool.Pool) AboutUsRepository {
	return &aboutUsRepository{pool: pool}
}

// Save inserts a new entry or updates an existing one when ID is set.
func (r *aboutUsRepository) Save(ctx context.Context, entry *domain.AboutUs) error {
	if entry.ID == 0 {
		const query = `
            INSERT INTO aboutus (title, body, image_url)
            VALUES ($1, $2, $3)
            RETURNING id`
		return r.pool.QueryRow(ctx, query, entry.Title, entry.Body, entry.ImageURL).Scan(&entry.ID)
	}

	cmd, err := r.pool.Exec(ctx,
		`UPDATE aboutus SET title=$1, body=$2, image_url=$3 WHERE id=$4`,
		entry.Title, entry.Body, entry.ImageURL, entry.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *aboutUsRepository) GetByID(ctx context.Context, id int64) (*domain.AboutUs, error) {
	var entry domain.AboutUs
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, body, image_url FROM aboutus WHERE id=$1`, id).Scan(
		&entry.ID,
		&entry.Title,
		&entry.Body,
		&entry.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *aboutUsRepository) List(ctx context.Context) ([]domain.AboutUs, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, body, image_url FROM aboutus ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AboutUs
	for rows.Next() {
		var entry domain.AboutUs
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Body, &entry.ImageURL); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
