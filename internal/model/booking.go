package model

// PaymentStatusConfirmed is the status written by the only booking code
// path.  The column default remains "Pending" for rows created out of band.
const PaymentStatusConfirmed = "Confirmed"

// Booking records a confirmed reservation of one or more seats for a movie
// by a named user.  Bookings are never mutated or deleted after creation.
//
// Fields:
//
//	ID            – primary key identifier.
//	MovieID       – movie being booked (not validated against movies at
//	                write time).
//	UserName      – free-text name of the person booking.
//	Seats         – seat codes, stored comma-joined in the bookings.seats
//	                column and exposed as an array over the API.
//	TotalPrice    – total price for all seats.
//	PaymentStatus – enumeration-like text; the booking path always writes
//	                "Confirmed".
type Booking struct {
	ID            int64    `json:"id"`             // bookings.id
	MovieID       int64    `json:"movie_id"`       // bookings.movie_id
	UserName      string   `json:"user_name"`      // bookings.user_name
	Seats         []string `json:"seats"`          // bookings.seats (comma-joined)
	TotalPrice    float64  `json:"total_price"`    // bookings.total_price
	PaymentStatus string   `json:"payment_status"` // bookings.payment_status
}
