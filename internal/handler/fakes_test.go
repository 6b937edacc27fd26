package handler

import (
	"context"
	"strings"
	"sync"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// fakeMovieStore serves a fixed catalog from memory.
type fakeMovieStore struct {
	movies []model.Movie
	err    error
}

func (f *fakeMovieStore) ListAll(ctx context.Context) ([]model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Movie, len(f.movies))
	copy(out, f.movies)
	return out, nil
}

func (f *fakeMovieStore) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.movies {
		if m.ID == id {
			mm := m
			return &mm, nil
		}
	}
	return nil, repository.ErrMovieNotFound
}

// fakeBookingStore keeps bookings in memory behind a mutex so concurrent
// handler tests observe a consistent view.
type fakeBookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []model.Booking
	err      error
}

func (f *fakeBookingStore) Create(ctx context.Context, b *model.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	b.ID = f.nextID
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingStore) SeatsBookedForMovie(ctx context.Context, movieID int64) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var booked []string
	seen := make(map[string]struct{})
	for _, b := range f.bookings {
		if b.MovieID != movieID {
			continue
		}
		for _, s := range b.Seats {
			s = strings.TrimSpace(s)
			if _, ok := seen[s]; !ok && s != "" {
				seen[s] = struct{}{}
				booked = append(booked, s)
			}
		}
	}
	return booked, nil
}

func (f *fakeBookingStore) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			bb := b
			return &bb, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

func (f *fakeBookingStore) ListByMovie(ctx context.Context, movieID int64) ([]model.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Booking, 0)
	for _, b := range f.bookings {
		if b.MovieID == movieID {
			out = append(out, b)
		}
	}
	return out, nil
}
