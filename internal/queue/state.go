package queue

import "sync"

// FlightState is the state of a single-flight operation
type FlightState int

const (
	Idle FlightState = iota
	Active
)

func (s FlightState) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// guard lets one caller through at a time; others are turned away, not queued
type guard struct {
	mu    sync.Mutex
	state FlightState
}

// begin moves idle -> active and reports whether the caller owns the flight
func (g *guard) begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Active {
		return false
	}
	g.state = Active
	return true
}

// end moves active -> idle
func (g *guard) end() {
	g.mu.Lock()
	g.state = Idle
	g.mu.Unlock()
}

func (g *guard) current() FlightState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// DueCountState is the reconciler's fetch state
type DueCountState int

const (
	Standby DueCountState = iota
	Fetching
)

func (s DueCountState) String() string {
	if s == Fetching {
		return "fetching"
	}
	return "standby"
}
