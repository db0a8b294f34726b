package hw

import (
	"slices"
	"testing"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()

	var got []EventKind
	s.Handle(EventReset, func() { got = append(got, EventReset) })
	s.Handle(EventAudioFrame, func() { got = append(got, EventAudioFrame) })

	s.Queue(EventAudioFrame, 10)
	s.Queue(EventReset, 5)
	s.Queue(EventReset, 10)
	if s.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", s.Pending())
	}

	for range 4 {
		s.tick()
	}
	s.HandleEvents()
	if len(got) != 0 {
		t.Fatalf("events handled too early: %v", got)
	}

	s.tick()
	s.HandleEvents()
	if !slices.Equal(got, []EventKind{EventReset}) {
		t.Fatalf("got %v, want [Reset]", got)
	}

	// Same tick: handled in queue order.
	for range 5 {
		s.tick()
	}
	s.HandleEvents()
	want := []EventKind{EventReset, EventAudioFrame, EventReset}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if s.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", s.Pending())
	}
}

func TestSchedulerRequeue(t *testing.T) {
	s := NewScheduler()

	count := 0
	s.Handle(EventAudioFrame, func() {
		count++
		s.Queue(EventAudioFrame, 3)
	})
	s.Queue(EventAudioFrame, 0)

	for range 10 {
		s.HandleEvents()
		s.tick()
	}
	// ticks 0, 3, 6 and 9
	if count != 4 {
		t.Errorf("handler called %d times, want 4", count)
	}
	if s.Ticks() != 10 {
		t.Errorf("Ticks() = %d, want 10", s.Ticks())
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	s.Handle(EventReset, func() { t.Fatal("cleared event handled") })
	s.Queue(EventReset, 1)
	s.tick()
	s.Clear()

	if s.Ticks() != 0 || s.Pending() != 0 {
		t.Fatalf("after Clear: ticks=%d pending=%d", s.Ticks(), s.Pending())
	}
	s.tick()
	s.HandleEvents()
}

func TestSchedulerMissingHandler(t *testing.T) {
	s := NewScheduler()
	s.Queue(EventAudioFrame, 0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	s.HandleEvents()
}
