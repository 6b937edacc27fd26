// Package repository contains data access logic for movies and bookings.
// This file defines sentinel error values that are shared across
// repositories.  Handlers compare against these with errors.Is to decide
// which HTTP status to return, so repositories never leak sql.ErrNoRows
// upward.
package repository

import "errors"

// ErrMovieNotFound indicates that no movie row matched the requested id.
// Handlers should translate this into an HTTP 404 response.
var ErrMovieNotFound = errors.New("movie not found")

// ErrBookingNotFound indicates that no booking row matched the requested
// id.  Handlers should translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")
