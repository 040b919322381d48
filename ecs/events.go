package ecs

import "github.com/milk9111/ringrush/ecs/component"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventContact = "contact"

// ContactPhase distinguishes the start, continuation and end of a touch.
type ContactPhase uint8

const (
	ContactBegin ContactPhase = iota
	ContactStay
	ContactEnd
)

func (p ContactPhase) String() string {
	switch p {
	case ContactBegin:
		return "begin"
	case ContactStay:
		return "stay"
	case ContactEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Contact is one raw "two colliders touched" report from the physics host.
type Contact struct {
	A, B      Entity
	CategoryA component.Category
	CategoryB component.Category
	// NormalY is the vertical component of the contact normal as seen from
	// A. It is positive when B approached A from below.
	NormalY float64
	Phase   ContactPhase
}

// Swap returns the same contact seen from B.
func (c Contact) Swap() Contact {
	return Contact{
		A:         c.B,
		B:         c.A,
		CategoryA: c.CategoryB,
		CategoryB: c.CategoryA,
		NormalY:   -c.NormalY,
		Phase:     c.Phase,
	}
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// PushContact queues a contact report for this step.
func (q *EventQueue) PushContact(c Contact) {
	q.Push(Event{Type: EventContact, Data: c})
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// DrainContacts removes and returns only the contact events, leaving the
// rest queued in order.
func (q *EventQueue) DrainContacts() []Contact {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var contacts []Contact
	rest := q.items[:0]
	for _, evt := range q.items {
		if c, ok := evt.Data.(Contact); ok && evt.Type == EventContact {
			contacts = append(contacts, c)
			continue
		}
		rest = append(rest, evt)
	}
	q.items = rest
	return contacts
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
