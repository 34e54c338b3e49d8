package models

import "errors"

// Catalog errors
var (
	ErrInvalidMovieData   = errors.New("invalid movie data provided")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrInvalidTheaterData = errors.New("invalid theater data provided")
	ErrTheaterNotFound    = errors.New("theater not found")
)

// Seat identifier errors
var (
	ErrInvalidSeatID = errors.New("invalid seat identifier")
	ErrEmptySeatList = errors.New("no seats requested")
)

// Reservation errors
var (
	ErrUnknownMovie   = errors.New("unknown movie")
	ErrUnknownTheater = errors.New("unknown theater")
	ErrUnlinkedPair   = errors.New("movie is not showing at theater")
	ErrOverlap        = errors.New("one or more requested seats are already reserved")
	ErrContention     = errors.New("reservation retry budget exhausted under contention")
)

// Booking errors
var (
	ErrBookingNotFound = errors.New("booking not found")
)
