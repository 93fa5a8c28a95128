// Package uid provides the monotonically increasing actor identifier used
// across a single simulation run (spec §3 "IDs").
package uid

// UID identifies an Agent or Artifact for the lifetime of a simulation run.
type UID uint64

// Generator hands out strictly increasing UIDs. It is owned by exactly one
// SwarmGrammar, as its UIDGen field (spec §5 "the UID generator is owned by the world (one per
// simulation)"), never shared globally.
type Generator struct {
	next UID
}

// NewGenerator returns a Generator whose first Next() call returns 0.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns the next UID and advances the generator.
func (g *Generator) Next() UID {
	id := g.next
	g.next++
	return id
}

// Peek returns the UID that the next call to Next will return, without
// consuming it. Used when cloning a generator's state into a snapshot.
func (g *Generator) Peek() UID {
	return g.next
}

// Clone returns an independent copy of g's current state, matching the
// reference implementation's per-tick `uid_gen.clone()` pattern
// (core/src/swarm/world.rs): callers mutate the clone during a tick and
// only commit it back on success.
func (g *Generator) Clone() *Generator {
	return &Generator{next: g.next}
}

// Adopt replaces g's state with other's, committing a clone's progress
// back to the generator of record.
func (g *Generator) Adopt(other *Generator) {
	g.next = other.next
}
