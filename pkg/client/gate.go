package client

import (
	"context"
	"sync"
)

// Gate tracks whether a usable backend handle exists. Workflows consult it
// before every remote call; how and when the handle shows up is the
// Connector's business.
type Gate struct {
	mu           sync.Mutex
	actor        Actor
	initializing bool
}

func NewGate() *Gate {
	return &Gate{}
}

// Set installs a ready handle and clears the initializing flag.
func (g *Gate) Set(a Actor) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.actor = a
	g.initializing = false
}

// Clear drops the handle, e.g. after the session ends.
func (g *Gate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.actor = nil
}

func (g *Gate) SetInitializing(v bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.initializing = v
}

// IsReady reports whether a handle is present and not being re-established.
func (g *Gate) IsReady() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.actor != nil && !g.initializing
}

// Actor returns the handle iff the gate is ready.
func (g *Gate) Actor() (Actor, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.actor == nil || g.initializing {
		return nil, false
	}
	return g.actor, true
}

// Connector establishes the backend handle asynchronously and flips the
// gate when done.
type Connector struct {
	gate *Gate
	dial func(ctx context.Context) (Actor, error)
}

func NewConnector(gate *Gate, dial func(ctx context.Context) (Actor, error)) *Connector {
	return &Connector{gate: gate, dial: dial}
}

// Connect dials the backend and installs the handle. While it runs the gate
// reports not-ready, so in-flight submissions keep backing off.
func (c *Connector) Connect(ctx context.Context) error {
	c.gate.SetInitializing(true)
	actor, err := c.dial(ctx)
	if err != nil {
		c.gate.SetInitializing(false)
		return err
	}
	c.gate.Set(actor)
	return nil
}
