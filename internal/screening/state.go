// Package screening implements the lock-free reservation primitive: one
// ScreeningState per (movie, theater) pair, backed by a single atomic 32-bit
// occupancy word. Bits 0..19 each represent one seat (0 free, 1 occupied);
// bits 20..31 must always remain zero.
package screening

import (
	"math/bits"
	"runtime"
	"sync/atomic"
	"time"

	"cinebook-lld/internal/seatcodec"
)

// retryCap bounds the back-off loop in TryReserve. Exhausting it collapses
// into the same false return as a genuine overlap.
const retryCap = 100

// State is the occupancy bitmap for one screening. The zero value is a valid
// empty (all-seats-free) state. State must not be copied after first use —
// callers obtain it from the registry and share it by reference.
type State struct {
	occupied atomic.Uint32
}

// TryReserve attempts to atomically transition every bit set in mask from 0
// to 1. It returns true iff all of them did, in one linearization point —
// there is no partial success. mask must only have bits 0..19 set; the
// codec's BuildMask guarantees this.
//
// Protocol:
//  1. Acquire-load occupied into current.
//  2. If current&mask != 0, a seat is already taken — return false, no retry.
//  3. CAS occupied from current to current|mask (release/acquire). Success
//     returns true.
//  4. On CAS failure, back off (Gosched, then a progressive sleep) and retry
//     from step 1, up to retryCap times. Exhausting the cap returns false.
func (s *State) TryReserve(mask uint32) bool {
	for retry := 0; retry < retryCap; retry++ {
		current := s.occupied.Load()
		if current&mask != 0 {
			return false
		}

		next := current | mask
		if s.occupied.CompareAndSwap(current, next) {
			return true
		}

		runtime.Gosched()
		time.Sleep(time.Duration(50*(retry+1)) * time.Nanosecond)
	}

	return false
}

// IsAvailable reports whether every seat in mask is currently free. Purely
// observational: the result is a snapshot that may race with concurrent
// reservations.
func (s *State) IsAvailable(mask uint32) bool {
	current := s.occupied.Load()
	return current&mask == 0
}

// AvailableSeats returns the free seats in ascending bit order.
func (s *State) AvailableSeats() []string {
	current := s.occupied.Load()

	seats := make([]string, 0, seatcodec.SeatCount)
	for bit := 0; bit < seatcodec.SeatCount; bit++ {
		if current&(1<<uint(bit)) == 0 {
			seats = append(seats, seatcodec.FormatSeat(bit))
		}
	}
	return seats
}

// AvailableCount returns the number of free seats, in 0..SeatCount.
func (s *State) AvailableCount() int {
	current := s.occupied.Load()
	return seatcodec.SeatCount - bits.OnesCount32(current&seatcodec.AllSeatsMask)
}

// OccupancyPercent returns the fraction of seats occupied, in [0, 100].
func (s *State) OccupancyPercent() float64 {
	occupiedCount := seatcodec.SeatCount - s.AvailableCount()
	return float64(occupiedCount) * 100 / float64(seatcodec.SeatCount)
}
