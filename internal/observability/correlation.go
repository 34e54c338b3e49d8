// Package observability stamps each inbound call with a correlation id so a
// single reservation attempt can be traced across the log lines it produces,
// even when thousands of goroutines are contending on the same screening.
package observability

import "github.com/google/uuid"

// NewCorrelationID returns a fresh identifier for one call into
// BookingService. It carries no domain meaning — it exists purely so log
// lines from the same Reserve attempt can be grepped together.
func NewCorrelationID() string {
	return uuid.New().String()
}
