package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// ReservationRepository defines persistence access for hotel reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	Update(ctx context.Context, reservation *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
	CancelByHotel(ctx context.Context, hotelID string) error
}

type reservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository returns a Postgres-backed implementation.
func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &reservationRepository{pool: pool}
}

const reservationColumns = `id, user_id, hotel_id, hotel, room_type, reservation_number, date_start, date_end,
        total_days, price, total_price, location, guests, bed_amount, bed_size, state, rating, bundle, provider_id`

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	const query = `
        INSERT INTO reservations (user_id, hotel_id, hotel, room_type, reservation_number, date_start, date_end,
            total_days, price, total_price, location, guests, bed_amount, bed_size, state, rating, bundle, provider_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		reservation.UserID,
		reservation.HotelID,
		reservation.Hotel,
		reservation.RoomType,
		reservation.ReservationNumber,
		reservation.DateStart,
		reservation.DateEnd,
		reservation.TotalDays,
		reservation.Price,
		reservation.TotalPrice,
		reservation.Location,
		reservation.Guests,
		reservation.BedAmount,
		reservation.BedSize,
		reservation.State,
		reservation.Rating,
		reservation.Bundle,
		reservation.ProviderID,
	).Scan(&reservation.ID)
}

func (r *reservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	const query = `
        UPDATE reservations SET hotel_id=$1, hotel=$2, room_type=$3, date_start=$4, date_end=$5, total_days=$6,
            price=$7, total_price=$8, location=$9, guests=$10, bed_amount=$11, bed_size=$12, state=$13,
            rating=$14, bundle=$15, provider_id=$16
        WHERE id=$17`

	cmd, err := r.pool.Exec(ctx, query,
		reservation.HotelID,
		reservation.Hotel,
		reservation.RoomType,
		reservation.DateStart,
		reservation.DateEnd,
		reservation.TotalDays,
		reservation.Price,
		reservation.TotalPrice,
		reservation.Location,
		reservation.Guests,
		reservation.BedAmount,
		reservation.BedSize,
		reservation.State,
		reservation.Rating,
		reservation.Bundle,
		reservation.ProviderID,
		reservation.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var reservation domain.Reservation
	err := scanReservation(r.pool.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id=$1`, id), &reservation)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.queryMany(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY id`)
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	return r.queryMany(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE user_id=$1 ORDER BY id`, userID)
}

func (r *reservationRepository) Cancel(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE reservations SET state=$1 WHERE id=$2`, domain.ReservationStateCancelled, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reservationRepository) CancelByHotel(ctx context.Context, hotelID string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE reservations SET state=$1 WHERE hotel_id=$2`, domain.ReservationStateCancelled, hotelID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reservationRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var reservation domain.Reservation
		if err := scanReservation(rows, &reservation); err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, rows.Err()
}

func scanReservation(row pgx.Row, reservation *domain.Reservation) error {
	return row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.HotelID,
		&reservation.Hotel,
		&reservation.RoomType,
		&reservation.ReservationNumber,
		&reservation.DateStart,
		&reservation.DateEnd,
		&reservation.TotalDays,
		&reservation.Price,
		&reservation.TotalPrice,
		&reservation.Location,
		&reservation.Guests,
		&reservation.BedAmount,
		&reservation.BedSize,
		&reservation.State,
		&reservation.Rating,
		&reservation.Bundle,
		&reservation.ProviderID,
	)
}
