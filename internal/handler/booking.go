package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/seats"
)

// BookingStore is the persistence surface required by BookingHandler.
// *repository.BookingRepo satisfies it.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	SeatsBookedForMovie(ctx context.Context, movieID int64) ([]string, error)
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	ListByMovie(ctx context.Context, movieID int64) ([]model.Booking, error)
}

// PublishFunc publishes a booking event to the message broker.  Failures
// are the publisher's problem; the booking itself has already committed.
type PublishFunc func(ctx context.Context, ev queue.BookingCreatedEvent) error

// BookingHandler serves booking creation and lookup.  Seat-conflict
// checking is read-then-write, so CreateBooking serializes per movie id:
// the service is single-process and the store has no per-seat rows to hang
// a uniqueness constraint on, which makes an in-process critical section
// the serialization point.  Without it two overlapping requests could both
// observe the same available set and double-book a seat.
type BookingHandler struct {
	Bookings BookingStore
	Movies   MovieStore
	publish  PublishFunc

	mu    sync.Mutex
	locks map[int64]*sync.Mutex // one lock per movie id, created on demand
}

// NewBookingHandler constructs a BookingHandler.  publish may be nil, in
// which case no events are emitted.
func NewBookingHandler(bookings BookingStore, movies MovieStore, publish PublishFunc) *BookingHandler {
	if bookings == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{
		Bookings: bookings,
		Movies:   movies,
		publish:  publish,
		locks:    make(map[int64]*sync.Mutex),
	}
}

// movieLock returns the mutex guarding booking creation for one movie.
func (h *BookingHandler) movieLock(movieID int64) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, ok := h.locks[movieID]
	if !ok {
		l = &sync.Mutex{}
		h.locks[movieID] = l
	}
	return l
}

// createBookingRequest is the typed body of POST /api/bookings.  Seats
// arrive as a single comma-separated string, mirroring the stored column.
type createBookingRequest struct {
	MovieID    int64   `json:"movie_id"`
	UserName   string  `json:"user_name"`
	Seats      string  `json:"seats"`
	TotalPrice float64 `json:"total_price"`
}

// validate checks the request fields at the API boundary and returns a
// human-readable message for the first problem found.
func (r createBookingRequest) validate() string {
	if r.MovieID <= 0 {
		return "movie_id is required and must be a positive integer"
	}
	if strings.TrimSpace(r.UserName) == "" {
		return "user_name is required"
	}
	if strings.TrimSpace(r.Seats) == "" {
		return "seats is required"
	}
	return ""
}

// CreateBooking handles POST /api/bookings.  The request seats are parsed,
// checked against the fixed seat universe minus every seat already booked
// for the movie, and persisted with payment status "Confirmed".  Conflicting
// or unknown seats fail the whole request with 400 naming the seats; no
// partial booking is created.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}
	requested := seats.Parse(req.Seats)
	if len(requested) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "seats is required"})
	}

	ctx := c.Request().Context()

	// Critical section: availability check and insert for one movie must
	// not interleave with another booking for the same movie.
	lock := h.movieLock(req.MovieID)
	lock.Lock()
	defer lock.Unlock()

	booked, err := h.Bookings.SeatsBookedForMovie(ctx, req.MovieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	available := seats.Available(booked)
	invalid := seats.Unavailable(requested, available)
	if len(invalid) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": fmt.Sprintf("Seats %s are already booked or invalid.", strings.Join(invalid, ", ")),
		})
	}

	b := &model.Booking{
		MovieID:       req.MovieID,
		UserName:      req.UserName,
		Seats:         requested,
		TotalPrice:    req.TotalPrice,
		PaymentStatus: model.PaymentStatusConfirmed,
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if h.publish != nil {
		// Best effort; the publisher logs its own failures.
		_ = h.publish(ctx, queue.BookingCreatedEvent{
			BookingID:  b.ID,
			MovieID:    b.MovieID,
			UserName:   b.UserName,
			Seats:      b.Seats,
			TotalPrice: b.TotalPrice,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, b)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, b)
}

// ListMovieBookings handles GET /api/movies/:id/bookings.  The movie must
// exist; its bookings are returned in store-native order, possibly empty.
func (h *BookingHandler) ListMovieBookings(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if h.Movies != nil {
		if _, err := h.Movies.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"message": "Movie not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	bookings, err := h.Bookings.ListByMovie(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bookings)
}
