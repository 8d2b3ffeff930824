package listing

import "sync"

// Sequencer hands out monotonically increasing tickets per resource so that a
// response can be checked against the latest request before it is applied.
type Sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// NewSequencer creates an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[string]uint64)}
}

// Ticket identifies one request for a resource.
type Ticket struct {
	seq      *Sequencer
	resource string
	id       uint64
}

// Begin issues a ticket that supersedes every earlier ticket for resource.
func (s *Sequencer) Begin(resource string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[resource]++
	return Ticket{seq: s, resource: resource, id: s.latest[resource]}
}

// Current reports whether no newer ticket has been issued for the resource.
func (t Ticket) Current() bool {
	t.seq.mu.Lock()
	defer t.seq.mu.Unlock()
	return t.seq.latest[t.resource] == t.id
}

// ID returns the ticket number.
func (t Ticket) ID() uint64 { return t.id }

// Resource returns the resource the ticket was issued for.
func (t Ticket) Resource() string { return t.resource }
