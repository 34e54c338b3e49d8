package services

import (
	"github.com/sirupsen/logrus"

	"cinebook-lld/internal/models"
)

// LoggingNotifier implements BookingNotifier by emitting structured logrus
// entries on every reservation outcome.
type LoggingNotifier struct {
	log *logrus.Logger
}

// NewLoggingNotifier creates a notifier that logs through log.
func NewLoggingNotifier(log *logrus.Logger) *LoggingNotifier {
	return &LoggingNotifier{log: log}
}

// NotifyReserved logs a successful reservation at Info level.
func (n *LoggingNotifier) NotifyReserved(correlationID string, booking *models.Booking) {
	n.log.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"booking_id":     booking.ID,
		"movie_id":       booking.MovieID,
		"theater_id":     booking.TheaterID,
		"seats":          booking.Seats,
	}).Info("reservation confirmed")
}

// NotifyFailed logs a failed reservation attempt at Info level, with the
// error kind as a field so operators can distinguish overlap from
// contention from validation failures without parsing a message string.
func (n *LoggingNotifier) NotifyFailed(correlationID string, movieID, theaterID uint32, seats []string, err error) {
	n.log.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"movie_id":       movieID,
		"theater_id":     theaterID,
		"seats":          seats,
		"reason":         err.Error(),
	}).Info("reservation failed")
}
