package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the movies and bookings tables when they do not
// exist.  There is no migration history; the schema is small and fixed.
// seats holds a comma-joined list of seat codes rather than a child table,
// matching the wire format of the booking API.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			id        INT AUTO_INCREMENT PRIMARY KEY,
			title     VARCHAR(255) NOT NULL,
			genre     VARCHAR(100),
			showtimes VARCHAR(255)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id             INT AUTO_INCREMENT PRIMARY KEY,
			movie_id       INT,
			user_name      VARCHAR(255),
			seats          VARCHAR(255),
			total_price    DECIMAL(10,2),
			payment_status VARCHAR(32) DEFAULT 'Pending',
			KEY idx_bookings_movie_id (movie_id)
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedMovies inserts a small default catalog when the movies table is
// empty.  Movies are otherwise created out of band; the seed only exists so
// a fresh install has something to list.
func SeedMovies(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}
	if count > 0 {
		return nil
	}
	const q = `INSERT INTO movies (title, genre, showtimes) VALUES (?, ?, ?)`
	seed := []struct {
		title, genre, showtimes string
	}{
		{"Inception", "Sci-Fi", "14:00, 17:30, 21:00"},
		{"The Grand Budapest Hotel", "Comedy", "13:15, 18:45"},
		{"Parasite", "Thriller", "16:00, 20:30"},
	}
	for _, m := range seed {
		if _, err := db.ExecContext(ctx, q, m.title, m.genre, m.showtimes); err != nil {
			return fmt.Errorf("seed movies: %w", err)
		}
	}
	return nil
}
