package main

import (
	"fmt"
	"log"
	"sync"

	"cinebook-lld/internal/controllers"
	"cinebook-lld/internal/models"
	"cinebook-lld/internal/services"
)

func main() {
	fmt.Println("Cinebook — concurrent seat reservation prototype")
	fmt.Println("==================================================")

	appController := controllers.GetAppController()
	bookingService := appController.GetBookingService()

	runDemo(bookingService)
}

func runDemo(bookingService services.BookingService) {
	fmt.Println("\n1. Catalog setup")

	if err := bookingService.AddMovie(1, "Spirited Away"); err != nil {
		log.Fatal("failed to add movie:", err)
	}
	if err := bookingService.AddTheater(1, "Grand Palace"); err != nil {
		log.Fatal("failed to add theater:", err)
	}
	if !bookingService.Link(1, 1) {
		log.Fatal("failed to link movie and theater")
	}
	fmt.Println("✓ movie and theater linked")

	fmt.Println("\n2. Single reservation")

	booking, err := bookingService.Reserve(1, 1, []string{"a1", "a2"})
	if err != nil {
		log.Fatal("reservation failed:", err)
	}
	fmt.Printf("✓ booking #%d: seats %v\n", booking.ID, booking.Seats)

	fmt.Printf("  available seats remaining: %d/%d\n",
		bookingService.AvailableCount(1, 1), 20)

	fmt.Println("\n3. Duplicate reservation rejected")

	if _, err := bookingService.Reserve(1, 1, []string{"a1"}); err != nil {
		fmt.Printf("✓ correctly rejected: %v\n", err)
	}

	fmt.Println("\n4. Contended reservation: many goroutines race for the same seat")

	runContendedDemo(bookingService, 1, 1, "a3")

	fmt.Println("\n5. Contended reservation: goroutines race over disjoint rotating seats")

	runRotatingDemo(bookingService, 1, 1)

	fmt.Println("\nDemo complete.")
}

// runContendedDemo launches n goroutines that all attempt to reserve the
// same single seat; exactly one must succeed.
func runContendedDemo(bookingService services.BookingService, movieID, theaterID uint32, seat string) {
	const n = 1000

	var wg sync.WaitGroup
	var successes sync.Mutex
	var winners []*models.Booking

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			booking, err := bookingService.Reserve(movieID, theaterID, []string{seat})
			if err == nil {
				successes.Lock()
				winners = append(winners, booking)
				successes.Unlock()
			}
		}()
	}
	wg.Wait()

	fmt.Printf("✓ %d/%d goroutines won seat %s (expected 1)\n", len(winners), n, seat)
}

// runRotatingDemo launches goroutines that each target a distinct seat out of
// a small rotating pool, exercising independent successful CAS operations
// under contention on the shared occupancy word.
func runRotatingDemo(bookingService services.BookingService, movieID, theaterID uint32) {
	seatPool := []string{"a10", "a11", "a12", "a13", "a14"}
	const workersPerSeat = 50

	var wg sync.WaitGroup
	var successes sync.Mutex
	wins := make(map[string]int)

	for _, seat := range seatPool {
		seat := seat
		for i := 0; i < workersPerSeat; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := bookingService.Reserve(movieID, theaterID, []string{seat}); err == nil {
					successes.Lock()
					wins[seat]++
					successes.Unlock()
				}
			}()
		}
	}
	wg.Wait()

	for _, seat := range seatPool {
		fmt.Printf("  seat %s: %d winner(s) (expected 1)\n", seat, wins[seat])
	}
}
