// This file defines repository methods for bookings.  Seats are persisted
// as a comma-joined string in the bookings.seats column; the repository
// joins on write and splits on read so callers only ever see seat slices.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// BookingRepo manages persistence for bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Create inserts a new booking and assigns the generated ID back to the
// booking struct.  The caller provides movie id, user name, seats and
// total price; payment status is written as given (the booking handler
// always passes "Confirmed").
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (movie_id, user_name, seats, total_price, payment_status)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.MovieID, b.UserName, strings.Join(b.Seats, ","), b.TotalPrice, b.PaymentStatus)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// SeatsBookedForMovie returns the union of all seat codes already recorded
// in any booking for the given movie.  Every row is aggregated, so a seat
// booked in an earlier request stays unavailable no matter how many
// bookings the movie has accumulated.
func (r *BookingRepo) SeatsBookedForMovie(ctx context.Context, movieID int64) ([]string, error) {
	const q = `SELECT seats FROM bookings WHERE movie_id = ?`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var booked []string
	seen := make(map[string]struct{})
	for rows.Next() {
		var seats sql.NullString
		if err := rows.Scan(&seats); err != nil {
			return nil, err
		}
		if !seats.Valid {
			continue
		}
		for _, s := range strings.Split(seats.String, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				booked = append(booked, s)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return booked, nil
}

// GetByID retrieves a booking by its ID.  It returns ErrBookingNotFound
// if there is no matching row.
func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	const q = `SELECT id, movie_id, user_name, seats, total_price, payment_status FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListByMovie returns all bookings recorded for the given movie in
// store-native order.  No bookings yields an empty slice.
func (r *BookingRepo) ListByMovie(ctx context.Context, movieID int64) ([]model.Booking, error) {
	const q = `SELECT id, movie_id, user_name, seats, total_price, payment_status FROM bookings WHERE movie_id = ?`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var b model.Booking
	var seats sql.NullString
	if err := row.Scan(&b.ID, &b.MovieID, &b.UserName, &seats, &b.TotalPrice, &b.PaymentStatus); err != nil {
		return nil, err
	}
	if seats.Valid && seats.String != "" {
		b.Seats = strings.Split(seats.String, ",")
	} else {
		b.Seats = []string{}
	}
	return &b, nil
}
