package model

// Movie represents a film on the programme.  Movies are immutable once
// created: there are no update or delete routes, and rows are inserted by
// seed data rather than through the API.
//
// Fields:
//
//	ID        – primary key identifier.
//	Title     – movie title (non-empty).
//	Genre     – free-text genre, optional.
//	Showtimes – free-text list of showtimes, optional; not a structured
//	            schedule.
type Movie struct {
	ID        int64  `json:"id"`        // movies.id
	Title     string `json:"title"`     // movies.title
	Genre     string `json:"genre"`     // movies.genre
	Showtimes string `json:"showtimes"` // movies.showtimes
}
