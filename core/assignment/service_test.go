package assignment

import (
	"context"
	"testing"
	"time"
)

var est = time.FixedZone("EST", -5*60*60)

type sourceStub struct {
	events []RawEvent
	err    error
}

func (src sourceStub) FetchUpcomingEvents(ctx context.Context) ([]RawEvent, error) {
	return src.events, src.err
}

func assignmentMarker() map[string]interface{} {
	return map[string]interface{}{"id": 42}
}

func TestNormalize(t *testing.T) {
	svc := NewService(sourceStub{}, est)

	t.Run("assignment event", func(t *testing.T) {
		events := []RawEvent{{
			EndAt:       "2021-04-12T21:00:00Z",
			Title:       "Homework 4",
			ContextName: "3-ENGR-1410-Intro to Engineering - Section A",
			Assignment:  assignmentMarker(),
		}}
		assignments, err := svc.Normalize(events)
		if err != nil {
			t.Fatalf("Normalize() failed: %v", err)
		}
		if len(assignments) != 1 {
			t.Fatalf("Normalize() returned %d assignments, want 1", len(assignments))
		}

		a := assignments[0]
		wantDueAt := time.Date(2021, time.April, 12, 16, 0, 0, 0, est)
		if !a.DueAt.Equal(wantDueAt) {
			t.Errorf("DueAt = %v, want %v", a.DueAt, wantDueAt)
		}
		if a.DueAt.Location() != est {
			t.Errorf("DueAt location = %v, want %v", a.DueAt.Location(), est)
		}
		if want := "Monday, April 12, 2021 @ 04:00PM"; a.DueAtDisplay != want {
			t.Errorf("DueAtDisplay = %q, want %q", a.DueAtDisplay, want)
		}
		if want := "ENGR-1410-Intro to Engineering"; a.CourseLabel != want {
			t.Errorf("CourseLabel = %q, want %q", a.CourseLabel, want)
		}
		if want := "Homework 4"; a.Title != want {
			t.Errorf("Title = %q, want %q", a.Title, want)
		}
	})

	t.Run("non-gradeable event is dropped", func(t *testing.T) {
		events := []RawEvent{{
			EndAt:       "2021-04-12T21:00:00Z",
			Title:       "Career Fair",
			ContextName: "Campus Life",
		}}
		assignments, err := svc.Normalize(events)
		if err != nil {
			t.Fatalf("Normalize() failed: %v", err)
		}
		if len(assignments) != 0 {
			t.Errorf("Normalize() returned %d assignments, want 0", len(assignments))
		}
	})

	t.Run("feed order is preserved", func(t *testing.T) {
		events := []RawEvent{
			{EndAt: "2021-04-13T21:00:00Z", Title: "second due, first in feed", Assignment: assignmentMarker()},
			{EndAt: "2021-04-12T21:00:00Z", Title: "first due, second in feed", Assignment: assignmentMarker()},
		}
		assignments, err := svc.Normalize(events)
		if err != nil {
			t.Fatalf("Normalize() failed: %v", err)
		}
		if len(assignments) != 2 {
			t.Fatalf("Normalize() returned %d assignments, want 2", len(assignments))
		}
		if assignments[0].Title != events[0].Title || assignments[1].Title != events[1].Title {
			t.Errorf("Normalize() reordered the feed: %q, %q", assignments[0].Title, assignments[1].Title)
		}
	})

	t.Run("malformed end_at fails the request", func(t *testing.T) {
		events := []RawEvent{{EndAt: "yesterday-ishZ", Title: "Quiz 1", Assignment: assignmentMarker()}}
		if _, err := svc.Normalize(events); err == nil {
			t.Error("Normalize() did not fail on a malformed end_at")
		}
	})

	t.Run("missing end_at fails the request", func(t *testing.T) {
		events := []RawEvent{{Title: "Quiz 1", Assignment: assignmentMarker()}}
		if _, err := svc.Normalize(events); err == nil {
			t.Error("Normalize() did not fail on a missing end_at")
		}
	})
}

func TestFilterWindow(t *testing.T) {
	svc := NewService(sourceStub{}, est)
	now := time.Date(2021, time.April, 12, 10, 0, 0, 0, est)
	horizon := time.Date(2021, time.April, 13, 23, 59, 59, 0, est)

	if got := svc.Horizon(now); !got.Equal(horizon) {
		t.Fatalf("Horizon() = %v, want %v", got, horizon)
	}

	tests := []struct {
		name  string
		dueAt time.Time
		want  bool
	}{
		{name: "due later today", dueAt: time.Date(2021, time.April, 12, 18, 0, 0, 0, est), want: true},
		{name: "due tomorrow", dueAt: time.Date(2021, time.April, 13, 8, 0, 0, 0, est), want: true},
		{name: "due exactly at the horizon", dueAt: horizon, want: true},
		{name: "due one second past the horizon", dueAt: horizon.Add(time.Second), want: false},
		{name: "due next week", dueAt: time.Date(2021, time.April, 19, 8, 0, 0, 0, est), want: false},
		// no lower bound: overdue work stays visible
		{name: "already overdue", dueAt: time.Date(2021, time.April, 10, 8, 0, 0, 0, est), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept := svc.FilterWindow([]Assignment{{DueAt: tt.dueAt, Title: tt.name}}, now)
			if got := len(kept) == 1; got != tt.want {
				t.Errorf("FilterWindow() kept = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("order is preserved", func(t *testing.T) {
		assignments := []Assignment{
			{DueAt: time.Date(2021, time.April, 13, 8, 0, 0, 0, est), Title: "b"},
			{DueAt: time.Date(2021, time.April, 19, 8, 0, 0, 0, est), Title: "dropped"},
			{DueAt: time.Date(2021, time.April, 12, 8, 0, 0, 0, est), Title: "a"},
		}
		kept := svc.FilterWindow(assignments, now)
		if len(kept) != 2 || kept[0].Title != "b" || kept[1].Title != "a" {
			t.Errorf("FilterWindow() = %+v, want [b a]", kept)
		}
	})
}

func TestClassify(t *testing.T) {
	svc := NewService(sourceStub{}, est)
	now := time.Date(2021, time.April, 12, 10, 0, 0, 0, est)

	assignments := []Assignment{
		{DueAt: time.Date(2021, time.April, 12, 23, 0, 0, 0, est), Title: "due today"},
		{DueAt: time.Date(2021, time.April, 13, 8, 0, 0, 0, est), Title: "due tomorrow"},
		{DueAt: time.Date(2021, time.April, 12, 8, 0, 0, 0, est), Title: "also today"},
	}
	buckets := svc.Classify(assignments, now)

	if buckets.TodayCount() != 2 || buckets.TomorrowCount() != 1 {
		t.Errorf("counts = %d/%d, want 2/1", buckets.TodayCount(), buckets.TomorrowCount())
	}
	if buckets.TodayCount()+buckets.TomorrowCount() != buckets.Total() {
		t.Errorf("today + tomorrow = %d, want total %d",
			buckets.TodayCount()+buckets.TomorrowCount(), buckets.Total())
	}
	if got := buckets.Today(); len(got) != 2 || got[0].Title != "due today" || got[1].Title != "also today" {
		t.Errorf("Today() = %+v, want [due today, also today]", got)
	}
	if got := buckets.Tomorrow(); len(got) != 1 || got[0].Title != "due tomorrow" {
		t.Errorf("Tomorrow() = %+v, want [due tomorrow]", got)
	}

	t.Run("year rollover", func(t *testing.T) {
		nye := time.Date(2020, time.December, 31, 10, 0, 0, 0, est)
		buckets := svc.Classify([]Assignment{
			{DueAt: time.Date(2020, time.December, 31, 23, 0, 0, 0, est), Title: "this year"},
			{DueAt: time.Date(2021, time.January, 1, 10, 0, 0, 0, est), Title: "next year"},
		}, nye)
		if buckets.TodayCount() != 1 || buckets.TomorrowCount() != 1 {
			t.Errorf("counts = %d/%d, want 1/1", buckets.TodayCount(), buckets.TomorrowCount())
		}
	})

	t.Run("same day number in another month is not today", func(t *testing.T) {
		buckets := svc.Classify([]Assignment{
			{DueAt: time.Date(2021, time.March, 12, 10, 0, 0, 0, est), Title: "a month past due"},
		}, now)
		if buckets.TodayCount() != 0 {
			t.Errorf("TodayCount() = %d, want 0", buckets.TodayCount())
		}
	})
}

func TestUpcomingNarrative(t *testing.T) {
	now := time.Date(2021, time.April, 12, 10, 0, 0, 0, est)

	t.Run("end to end", func(t *testing.T) {
		src := sourceStub{events: []RawEvent{
			{
				EndAt:       "2021-04-13T03:00:00Z", // 2021-04-12 22:00 EST
				Title:       "Homework 4",
				ContextName: "3-ENGR-1410-Intro to Engineering - Section A",
				Assignment:  assignmentMarker(),
			},
			{EndAt: "2021-04-13T03:00:00Z", Title: "Career Fair", ContextName: "Campus Life"},
			{EndAt: "2021-04-19T03:00:00Z", Title: "Term Paper", ContextName: "ENG-1030-Composition - H", Assignment: assignmentMarker()},
		}}
		svc := NewService(src, est)

		got, err := svc.UpcomingNarrative(context.Background(), now)
		if err != nil {
			t.Fatalf("UpcomingNarrative() failed: %v", err)
		}
		want := `<emphasis>Homework 4</emphasis> for ENGR-1410-Intro to Engineering, is due today at 10:00PM. <break time="1s"/>` +
			"You don't have anything due tomorrow. Good luck!"
		if got != want {
			t.Errorf("UpcomingNarrative() = %q, want %q", got, want)
		}
	})

	t.Run("source failure propagates", func(t *testing.T) {
		svc := NewService(sourceStub{err: context.DeadlineExceeded}, est)
		if _, err := svc.UpcomingNarrative(context.Background(), now); err == nil {
			t.Error("UpcomingNarrative() did not propagate the source error")
		}
	})
}
