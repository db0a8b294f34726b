package hw

import (
	"fmt"
	"math"
	"slices"

	"dunes/emu/log"
)

//go:generate go tool stringer -type=EventKind -trimprefix=Event

type EventKind uint8

const (
	EventUnreachable EventKind = iota // sentinel, never due
	EventReset
	EventAudioFrame

	numEventKinds
)

type event struct {
	kind EventKind
	tick uint64
}

// Scheduler keeps a queue of future events, sorted by tick. The tick is the
// CPU cycle count. The last event is a sentinel that's never due, so that
// the queue is never empty.
type Scheduler struct {
	events   []event
	ticks    uint64
	handlers [numEventKinds]func()
}

func NewScheduler() *Scheduler {
	s := &Scheduler{}
	s.Clear()
	return s
}

// Clear removes all queued events and resets the tick counter. Handlers are
// kept.
func (s *Scheduler) Clear() {
	s.ticks = 0
	s.events = append(s.events[:0], event{kind: EventUnreachable, tick: math.MaxUint64})
}

// Handle registers the function to call when an event of the given kind is
// due.
func (s *Scheduler) Handle(kind EventKind, f func()) {
	if kind == EventUnreachable {
		panic("scheduler: can't handle the sentinel event")
	}
	s.handlers[kind] = f
}

func (s *Scheduler) Ticks() uint64 { return s.ticks }

func (s *Scheduler) tick() { s.ticks++ }

// Queue schedules an event offset ticks from now. Events with the same tick
// are handled in the order they've been queued.
func (s *Scheduler) Queue(kind EventKind, offset uint64) {
	ev := event{kind: kind, tick: s.ticks + offset}
	i := slices.IndexFunc(s.events, func(e event) bool { return ev.tick < e.tick })
	if i < 0 {
		i = len(s.events) - 1
	}
	s.events = slices.Insert(s.events, i, ev)

	log.ModSched.DebugZ("queue").
		Stringer("kind", kind).
		Uint64("tick", ev.tick).
		End()
}

// Pending returns the number of queued events, sentinel excluded.
func (s *Scheduler) Pending() int { return len(s.events) - 1 }

// HandleEvents runs the handlers of all the events that are due. A handler
// may queue new events, if they're due they run in the same call.
func (s *Scheduler) HandleEvents() {
	for s.events[0].tick <= s.ticks {
		ev := s.events[0]
		s.events = slices.Delete(s.events, 0, 1)

		h := s.handlers[ev.kind]
		if ev.kind == EventUnreachable || h == nil {
			panic(fmt.Sprintf("scheduler: no handler for event %s at tick %d", ev.kind, ev.tick))
		}
		h()
	}
}
