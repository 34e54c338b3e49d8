package models

// Booking is an immutable record produced by a successful reservation.
// It is never mutated or removed once appended to the log.
type Booking struct {
	ID        uint64   `json:"id"`
	MovieID   uint32   `json:"movie_id"`
	TheaterID uint32   `json:"theater_id"`
	Seats     []string `json:"seats"`
}

// NewBooking constructs a Booking record. Callers must only invoke this after
// the seats named in Seats have already been atomically reserved.
func NewBooking(id uint64, movieID, theaterID uint32, seats []string) *Booking {
	seatsCopy := make([]string, len(seats))
	copy(seatsCopy, seats)

	return &Booking{
		ID:        id,
		MovieID:   movieID,
		TheaterID: theaterID,
		Seats:     seatsCopy,
	}
}
