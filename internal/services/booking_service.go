package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cinebook-lld/internal/catalog"
	"cinebook-lld/internal/ledger"
	"cinebook-lld/internal/models"
	"cinebook-lld/internal/observability"
	"cinebook-lld/internal/registry"
	"cinebook-lld/internal/seatcodec"
)

// BookingServiceImpl implements BookingService — the facade combining the
// catalog, registry, seat codec, and ledger.
type BookingServiceImpl struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
	ledger   *ledger.Ledger
	notifier BookingNotifier
	log      *logrus.Logger
}

// NewBookingService wires the four collaborators into a facade.
func NewBookingService(cat *catalog.Catalog, reg *registry.Registry, led *ledger.Ledger, notifier BookingNotifier, log *logrus.Logger) BookingService {
	return &BookingServiceImpl{
		catalog:  cat,
		registry: reg,
		ledger:   led,
		notifier: notifier,
		log:      log,
	}
}

func (bs *BookingServiceImpl) AddMovie(id uint32, title string) error {
	return bs.catalog.AddMovie(id, title)
}

func (bs *BookingServiceImpl) AddTheater(id uint32, name string) error {
	return bs.catalog.AddTheater(id, name)
}

func (bs *BookingServiceImpl) Link(movieID, theaterID uint32) bool {
	return bs.catalog.Link(movieID, theaterID)
}

func (bs *BookingServiceImpl) AllMovies() []models.Movie {
	return bs.catalog.AllMovies()
}

func (bs *BookingServiceImpl) GetMovie(id uint32) (models.Movie, bool) {
	return bs.catalog.GetMovie(id)
}

func (bs *BookingServiceImpl) TheatersFor(movieID uint32) []models.Theater {
	return bs.catalog.TheatersFor(movieID)
}

// AvailableSeats delegates to the registry; a pair with no state yet
// synthesizes the full twenty-seat answer without creating state (spec
// §4.F).
func (bs *BookingServiceImpl) AvailableSeats(movieID, theaterID uint32) []string {
	state, ok := bs.registry.Lookup(movieID, theaterID)
	if !ok {
		return seatcodec.AllSeats()
	}
	return state.AvailableSeats()
}

func (bs *BookingServiceImpl) AvailableCount(movieID, theaterID uint32) int {
	state, ok := bs.registry.Lookup(movieID, theaterID)
	if !ok {
		return seatcodec.SeatCount
	}
	return state.AvailableCount()
}

func (bs *BookingServiceImpl) OccupancyPercent(movieID, theaterID uint32) float64 {
	state, ok := bs.registry.Lookup(movieID, theaterID)
	if !ok {
		return 0
	}
	return state.OccupancyPercent()
}

// Reserve validates the request, routes it to the lock-free reservation
// primitive, and — only on success — allocates a booking id and appends the
// record.
func (bs *BookingServiceImpl) Reserve(movieID, theaterID uint32, seats []string) (*models.Booking, error) {
	correlationID := observability.NewCorrelationID()

	booking, err := bs.reserve(movieID, theaterID, seats)
	if err != nil {
		bs.notifier.NotifyFailed(correlationID, movieID, theaterID, seats, err)
		return nil, err
	}

	bs.notifier.NotifyReserved(correlationID, booking)
	return booking, nil
}

func (bs *BookingServiceImpl) reserve(movieID, theaterID uint32, seats []string) (*models.Booking, error) {
	if len(seats) == 0 {
		return nil, models.ErrEmptySeatList
	}

	for _, seat := range seats {
		if !seatcodec.IsValid(seat) {
			return nil, fmt.Errorf("reserve: seat %q: %w", seat, models.ErrInvalidSeatID)
		}
	}

	if _, ok := bs.catalog.GetMovie(movieID); !ok {
		return nil, models.ErrUnknownMovie
	}
	if _, ok := bs.catalog.GetTheater(theaterID); !ok {
		return nil, models.ErrUnknownTheater
	}
	if !bs.catalog.IsLinked(movieID, theaterID) {
		return nil, models.ErrUnlinkedPair
	}

	mask := seatcodec.BuildMask(seats)
	if mask == 0 {
		return nil, models.ErrInvalidSeatID
	}

	state := bs.registry.GetOrCreate(movieID, theaterID)

	if !state.TryReserve(mask) {
		if !state.IsAvailable(mask) {
			return nil, models.ErrOverlap
		}
		return nil, models.ErrContention
	}

	id := bs.ledger.AllocateID()
	booking := models.NewBooking(id, movieID, theaterID, seats)
	bs.ledger.Append(booking)

	return booking, nil
}

func (bs *BookingServiceImpl) GetBooking(id uint64) (*models.Booking, bool) {
	return bs.ledger.Lookup(id)
}
