package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// ProviderRepository defines persistence access for travel providers.
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) error
	Update(ctx context.Context, provider *domain.Provider) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context) ([]domain.Provider, error)
	ListByType(ctx context.Context, providerType domain.ProviderType) ([]domain.Provider, error)
}

type providerRepository struct {
	pool *pgxpool.Pool
}

// NewProviderRepository returns a Postgres-backed implementation.
func NewProviderRepository(pool *pgxpool.Pool) ProviderRepository {
	return &providerRepository{pool: pool}
}

const providerColumns = `id, provider_name, provider_url, provider_type, percentage_discount, gains_flights, gains_hotel`

func (r *providerRepository) Create(ctx context.Context, provider *domain.Provider) error {
	const query = `
        INSERT INTO providers (provider_name, provider_url, provider_type, percentage_discount, gains_flights, gains_hotel)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		provider.ProviderName,
		provider.ProviderURL,
		provider.Type,
		provider.PercentageDiscount,
		provider.GainsFlights,
		provider.GainsHotel,
	).Scan(&provider.ID)
}

func (r *providerRepository) Update(ctx context.Context, provider *domain.Provider) error {
	const query = `
        UPDATE providers SET provider_name=$1, provider_url=$2, provider_type=$3, percentage_discount=$4,
            gains_flights=$5, gains_hotel=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		provider.ProviderName,
		provider.ProviderURL,
		provider.Type,
		provider.PercentageDiscount,
		provider.GainsFlights,
		provider.GainsHotel,
		provider.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *providerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM providers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *providerRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	var provider domain.Provider
	err := scanProvider(r.pool.QueryRow(ctx, `SELECT `+providerColumns+` FROM providers WHERE id=$1`, id), &provider)
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) List(ctx context.Context) ([]domain.Provider, error) {
	return r.queryMany(ctx, `SELECT `+providerColumns+` FROM providers ORDER BY id`)
}

func (r *providerRepository) ListByType(ctx context.Context, providerType domain.ProviderType) ([]domain.Provider, error) {
	return r.queryMany(ctx, `SELECT `+providerColumns+` FROM providers WHERE provider_type=$1 ORDER BY id`, providerType)
}

func (r *providerRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Provider, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []domain.Provider
	for rows.Next() {
		var provider domain.Provider
		if err := scanProvider(rows, &provider); err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	return providers, rows.Err()
}

func scanProvider(row pgx.Row, provider *domain.Provider) error {
	return row.Scan(
		&provider.ID,
		&provider.ProviderName,
		&provider.ProviderURL,
		&provider.Type,
		&provider.PercentageDiscount,
		&provider.GainsFlights,
		&provider.GainsHotel,
	)
}
