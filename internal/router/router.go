// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
)

// RegisterRoutes wires every route of the service onto the provided Echo
// instance.  rdb may be nil, in which case the cache and rate-limit
// middleware are no-ops.
//
// Routes:
//
//	GET  /                        – static landing page from public/
//	GET  /healthz                 – liveness probe
//	GET  /api/movies              – list the movie catalog
//	GET  /api/movies/:id          – fetch one movie
//	GET  /api/movies/:id/bookings – list bookings of one movie
//	GET  /api/bookings/:id        – fetch one booking
//	POST /api/bookings            – create a booking
func RegisterRoutes(e *echo.Echo, mh *handler.MovieHandler, bh *handler.BookingHandler, rdb *redis.Client) {
	// Request logging, panic recovery and permissive CORS apply to every
	// route.  The static client may be served from a different origin.
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/healthz", handler.Health)

	// Static assets, including the landing page at /.
	e.Static("/", "public")

	// Catalog reads sit behind the response cache.
	catalogCache := middleware.NewCatalogCache(config.LoadCacheConfig(), rdb)
	api := e.Group("/api")
	api.GET("/movies", mh.ListMovies, catalogCache)
	api.GET("/movies/:id", mh.GetMovie, catalogCache)
	api.GET("/movies/:id/bookings", bh.ListMovieBookings)
	api.GET("/bookings/:id", bh.GetBooking)

	// Booking creation is the only write; it carries the rate limiter.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	api.POST("/bookings", bh.CreateBooking, limiter)
}
