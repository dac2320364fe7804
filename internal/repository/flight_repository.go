package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// FlightRepository defines persistence access for flight bookings and
// their ticket rows.
type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Flight, error)
	Deactivate(ctx context.Context, id int64) error
	DeactivateByFlightNumber(ctx context.Context, flightNumber string) error
	CreateTicket(ctx context.Context, ticket *domain.TicketPurchase) error
	DeactivateTicket(ctx context.Context, ticketID int64) error
}

type flightRepository struct {
	pool *pgxpool.Pool
}

// NewFlightRepository returns a Postgres-backed implementation.
func NewFlightRepository(pool *pgxpool.Pool) FlightRepository {
	return &flightRepository{pool: pool}
}

const flightColumns = `id, user_id, flight_number, departure_date, departure_location, arrival_location,
        return_date, flight_type, purchase_date, price, state, bundle, rating, provider_id`

func (r *flightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	const query = `
        INSERT INTO flights (user_id, flight_number, departure_date, departure_location, arrival_location,
            return_date, flight_type, purchase_date, price, state, bundle, rating, provider_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		flight.UserID,
		flight.FlightNumber,
		flight.DepartureDate,
		flight.DepartureLocation,
		flight.ArrivalLocation,
		flight.ReturnDate,
		flight.Type,
		flight.PurchaseDate,
		flight.Price,
		flight.State,
		flight.Bundle,
		flight.Rating,
		flight.ProviderID,
	).Scan(&flight.ID)
}

func (r *flightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	const query = `
        UPDATE flights SET flight_number=$1, departure_date=$2, departure_location=$3, arrival_location=$4,
            return_date=$5, flight_type=$6, price=$7, state=$8, bundle=$9, rating=$10, provider_id=$11
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		flight.FlightNumber,
		flight.DepartureDate,
		flight.DepartureLocation,
		flight.ArrivalLocation,
		flight.ReturnDate,
		flight.Type,
		flight.Price,
		flight.State,
		flight.Bundle,
		flight.Rating,
		flight.ProviderID,
		flight.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var flight domain.Flight
	if err := scanFlight(r.pool.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id), &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	return r.queryMany(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
}

func (r *flightRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Flight, error) {
	return r.queryMany(ctx, `SELECT `+flightColumns+` FROM flights WHERE user_id=$1 ORDER BY id`, userID)
}

func (r *flightRepository) Deactivate(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE flights SET state=$1 WHERE id=$2`, domain.FlightStateInactive, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) DeactivateByFlightNumber(ctx context.Context, flightNumber string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE flights SET state=$1 WHERE flight_number=$2`, domain.FlightStateInactive, flightNumber)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) CreateTicket(ctx context.Context, ticket *domain.TicketPurchase) error {
	const query = `
        INSERT INTO ticket_purchases (flight_id, user_id, flight_number, departure_date, departure_location,
            arrival_location, return_date, flight_type, purchase_date, price, state, bundle, rating)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		ticket.FlightID,
		ticket.UserID,
		ticket.FlightNumber,
		ticket.DepartureDate,
		ticket.DepartureLocation,
		ticket.ArrivalLocation,
		ticket.ReturnDate,
		ticket.Type,
		ticket.PurchaseDate,
		ticket.Price,
		ticket.State,
		ticket.Bundle,
		ticket.Rating,
	).Scan(&ticket.ID)
}

func (r *flightRepository) DeactivateTicket(ctx context.Context, ticketID int64) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE ticket_purchases SET state=$1 WHERE id=$2`, domain.FlightStateInactive, ticketID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Flight, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flights []domain.Flight
	for rows.Next() {
		var flight domain.Flight
		if err := scanFlight(rows, &flight); err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}
	return flights, rows.Err()
}

func scanFlight(row pgx.Row, flight *domain.Flight) error {
	return row.Scan(
		&flight.ID,
		&flight.UserID,
		&flight.FlightNumber,
		&flight.DepartureDate,
		&flight.DepartureLocation,
		&flight.ArrivalLocation,
		&flight.ReturnDate,
		&flight.Type,
		&flight.PurchaseDate,
		&flight.Price,
		&flight.State,
		&flight.Bundle,
		&flight.Rating,
		&flight.ProviderID,
	)
}
