package assignment

import "time"

const (
	DueToday    = "today"
	DueTomorrow = "tomorrow"
)

type (
	// RawEvent is one upcoming-event record as returned by the LMS feed.
	// Gradeable items carry an embedded assignment object; plain calendar
	// events do not.
	RawEvent struct {
		EndAt       string                 `json:"end_at"`
		Title       string                 `json:"title"`
		ContextName string                 `json:"context_name"`
		Assignment  map[string]interface{} `json:"assignment,omitempty"`
	}

	// Assignment is an immutable, normalized deadline. DueAt is always
	// zone-aware, expressed in the institution's local zone; DueAtDisplay is
	// rendered once at construction so the spoken date and the bucket decision
	// can never disagree.
	Assignment struct {
		DueAt        time.Time
		DueAtDisplay string
		CourseLabel  string
		Title        string
	}

	// Bucketed pairs an Assignment with the day bucket it falls in.
	Bucketed struct {
		Assignment
		Due string // DueToday | DueTomorrow
	}

	// Buckets is the classified partition, in original feed order.
	Buckets struct {
		Items []Bucketed
	}
)

func (e RawEvent) isAssignment() bool {
	return e.Assignment != nil
}

func (b Buckets) Total() int {
	return len(b.Items)
}

func (b Buckets) TodayCount() int {
	var n int
	for _, item := range b.Items {
		if item.Due == DueToday {
			n++
		}
	}
	return n
}

func (b Buckets) TomorrowCount() int {
	return b.Total() - b.TodayCount()
}

// Today returns the "today" bucket, feed order preserved.
func (b Buckets) Today() []Assignment {
	return b.bucket(DueToday)
}

// Tomorrow returns the "tomorrow" bucket, feed order preserved.
func (b Buckets) Tomorrow() []Assignment {
	return b.bucket(DueTomorrow)
}

func (b Buckets) bucket(due string) []Assignment {
	assignments := make([]Assignment, 0, len(b.Items))
	for _, item := range b.Items {
		if item.Due == due {
			assignments = append(assignments, item.Assignment)
		}
	}
	return assignments
}
