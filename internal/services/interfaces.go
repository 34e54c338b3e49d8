package services

import "cinebook-lld/internal/models"

// BookingService is the sole public write/read contract the core exposes.
// Any front-end that respects it is acceptable.
type BookingService interface {
	AddMovie(id uint32, title string) error
	AddTheater(id uint32, name string) error
	Link(movieID, theaterID uint32) bool
	AllMovies() []models.Movie
	GetMovie(id uint32) (models.Movie, bool)
	TheatersFor(movieID uint32) []models.Theater

	AvailableSeats(movieID, theaterID uint32) []string
	AvailableCount(movieID, theaterID uint32) int
	OccupancyPercent(movieID, theaterID uint32) float64

	Reserve(movieID, theaterID uint32, seats []string) (*models.Booking, error)
	GetBooking(id uint64) (*models.Booking, bool)
}

// BookingNotifier observes the outcome of a reservation attempt. The
// default implementation just logs; a front-end may substitute its own.
type BookingNotifier interface {
	NotifyReserved(correlationID string, booking *models.Booking)
	NotifyFailed(correlationID string, movieID, theaterID uint32, seats []string, err error)
}
