package dummyevents

import (
	"context"
	"sync"

	"github.com/trezcool/kesho/core/assignment"
)

// service is an in-memory event source for tests and local runs.
type service struct {
	mu     sync.RWMutex
	events []assignment.RawEvent
	err    error
}

var _ assignment.EventSource = (*service)(nil)

func NewService(events ...assignment.RawEvent) *service {
	return &service{events: events}
}

func (svc *service) FetchUpcomingEvents(ctx context.Context) ([]assignment.RawEvent, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.err != nil {
		return nil, svc.err
	}
	events := make([]assignment.RawEvent, len(svc.events))
	copy(events, svc.events)
	return events, nil
}

// SetEvents replaces the feed.
func (svc *service) SetEvents(events ...assignment.RawEvent) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.events = events
}

// Fail makes every subsequent fetch return err.
func (svc *service) Fail(err error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.err = err
}
