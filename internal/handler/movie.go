// Package handler exposes the HTTP handlers of the booking API.  This file
// defines read-only handlers over the movie catalog.  Handlers depend on
// narrow store interfaces rather than concrete repositories so they can be
// exercised against in-memory fakes in tests.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// MovieStore is the read surface of the movie catalog required by
// MovieHandler.  *repository.MovieRepo satisfies it.
type MovieStore interface {
	ListAll(ctx context.Context) ([]model.Movie, error)
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
}

// MovieHandler serves the movie catalog endpoints.  Both endpoints are
// pure reads with no side effects.
type MovieHandler struct {
	Movies MovieStore
}

// NewMovieHandler constructs a MovieHandler with the provided store.
func NewMovieHandler(movies MovieStore) *MovieHandler {
	if movies == nil {
		panic("nil store passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies}
}

// ListMovies handles GET /api/movies.  It returns every movie as a JSON
// array; an empty catalog yields an empty array, not an error.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.Movies.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /api/movies/:id.  It returns the matching movie,
// 404 when the id is unknown, or 400 when the id is not numeric.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	m, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, m)
}
