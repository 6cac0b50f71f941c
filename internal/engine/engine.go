// Package engine implements the course progression and assessment rules:
// lesson unlocking, quiz grading, completion cascades, certificate and
// diploma issuance, stipend computation and assignment tracking.
//
// Every operation is a pure function over an immutable curriculum chain and
// a progress record: it returns a new record plus an ordered event list and
// never touches persistence, notification or ambient clock state. Callers
// load the record, invoke one operation, persist the result and forward the
// events.
package engine

import "time"

// Clock supplies the current time. It is injected so issuance timestamps
// are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Service exposes the engine operations.
type Service struct {
	clock Clock
}

// NewService creates an engine service. A nil clock falls back to the
// system clock in UTC.
func NewService(clock Clock) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &Service{clock: clock}
}
