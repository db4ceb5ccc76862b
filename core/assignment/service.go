package assignment

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const (
	// endAtLayout is the feed's ISO-8601 form once the trailing zone marker is
	// stripped; the textual value is always UTC.
	endAtLayout   = "2006-01-02T15:04:05"
	displayLayout = "Monday, January 02, 2006 @ 03:04PM"
	dueTimeLayout = "03:04PM"
)

type (
	// EventSource is any service that can fetch the raw upcoming-event feed.
	EventSource interface {
		FetchUpcomingEvents(ctx context.Context) ([]RawEvent, error)
	}

	Service struct {
		src EventSource
		loc *time.Location
	}
)

func NewService(src EventSource, loc *time.Location) *Service {
	return &Service{src: src, loc: loc}
}

// UpcomingNarrative fetches the feed and runs it through the whole pipeline:
// normalize, window-filter, classify, render. `now` is passed in explicitly so
// results are reproducible.
func (svc *Service) UpcomingNarrative(ctx context.Context, now time.Time) (string, error) {
	events, err := svc.src.FetchUpcomingEvents(ctx)
	if err != nil {
		return "", errors.Wrap(err, "fetching upcoming events")
	}
	assignments, err := svc.Normalize(events)
	if err != nil {
		return "", err
	}
	due := svc.FilterWindow(assignments, now)
	return svc.Classify(due, now).Narrative(), nil
}

// Normalize turns raw events into Assignment entities, feed order preserved.
// Non-gradeable events are dropped silently; a malformed timestamp is a
// precondition violation and fails the whole request.
func (svc *Service) Normalize(events []RawEvent) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(events))
	for _, e := range events {
		a, err := svc.normalize(e)
		if err != nil {
			return nil, err
		}
		if a != nil {
			assignments = append(assignments, *a)
		}
	}
	return assignments, nil
}

func (svc *Service) normalize(e RawEvent) (*Assignment, error) {
	if !e.isAssignment() {
		return nil, nil
	}
	if e.EndAt == "" {
		return nil, errors.Errorf("event %q: missing end_at", e.Title)
	}

	// the feed always carries a trailing zone marker; strip it and treat the
	// textual form as UTC before converting to the local zone
	endAt, err := time.ParseInLocation(endAtLayout, e.EndAt[:len(e.EndAt)-1], time.UTC)
	if err != nil {
		return nil, errors.Wrapf(err, "event %q: parsing end_at %q", e.Title, e.EndAt)
	}
	dueAt := endAt.In(svc.loc)

	return &Assignment{
		DueAt:        dueAt,
		DueAtDisplay: dueAt.Format(displayLayout),
		CourseLabel:  extractCourseLabel(e.ContextName),
		Title:        e.Title,
	}, nil
}

// Horizon is the inclusive upper boundary of the look-ahead window: `now` with
// its time-of-day set to 23:59:59, plus 24h, in the local zone.
func (svc *Service) Horizon(now time.Time) time.Time {
	now = now.In(svc.loc)
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, svc.loc)
	return endOfDay.Add(24 * time.Hour)
}

// FilterWindow keeps assignments due on or before the horizon, feed order
// preserved. There is deliberately no lower bound: overdue work stays visible.
func (svc *Service) FilterWindow(assignments []Assignment, now time.Time) []Assignment {
	horizon := svc.Horizon(now)
	kept := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if !a.DueAt.After(horizon) {
			kept = append(kept, a)
		}
	}
	return kept
}

// Classify partitions window-filtered assignments into the today/tomorrow
// buckets by comparing full calendar dates in the local zone; the window filter
// already guarantees nothing further out survives.
func (svc *Service) Classify(assignments []Assignment, now time.Time) Buckets {
	now = now.In(svc.loc)
	items := make([]Bucketed, 0, len(assignments))
	for _, a := range assignments {
		due := DueTomorrow
		if sameDate(a.DueAt, now) {
			due = DueToday
		}
		items = append(items, Bucketed{Assignment: a, Due: due})
	}
	return Buckets{Items: items}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
