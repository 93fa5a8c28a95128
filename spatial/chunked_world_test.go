package spatial

import (
	"testing"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

func TestChunkedWorldUsesXZPlane(t *testing.T) {
	w := New(10)
	// Two agents share x,z but differ wildly in y: spec §4.2 says chunking
	// ignores height entirely, so they must land in the same cell.
	w.InsertAgent(actor.Agent{Position: vecmath.Vector3{X: 1, Y: 0, Z: 1}})
	w.InsertAgent(actor.Agent{Position: vecmath.Vector3{X: 1, Y: 500, Z: 1}})

	if len(w.agents) != 1 {
		t.Fatalf("expected both agents in the same x-z cell, got %d cells", len(w.agents))
	}

	c := w.cellOf(vecmath.Vector3{X: 1, Y: 0, Z: 1})
	if len(w.agents[c]) != 2 {
		t.Fatalf("expected 2 agents in cell %v, got %d", c, len(w.agents[c]))
	}
}

func TestChunkedWorldUsesZNotYForSecondCoordinate(t *testing.T) {
	w := New(10)
	a := actor.Agent{Position: vecmath.Vector3{X: 5, Y: 100, Z: 25}}
	c := w.cellOf(a.Position)
	if c.Z != 2 {
		t.Fatalf("expected cell.Z derived from position.Z (25/10=2), got %d", c.Z)
	}
}

func TestGetContextWithinFiltersByExactDistance(t *testing.T) {
	w := New(10)
	near := actor.Agent{SpeciesIndex: 0, Position: vecmath.Vector3{X: 1, Y: 0, Z: 0}}
	far := actor.Agent{SpeciesIndex: 1, Position: vecmath.Vector3{X: 9, Y: 0, Z: 0}}
	w.InsertAgent(near)
	w.InsertAgent(far)

	ctx := w.GetContextWithin(5, vecmath.Vector3{})
	if len(ctx) != 1 {
		t.Fatalf("expected exactly 1 neighbor within range 5, got %d", len(ctx))
	}
	if ctx[0].Surrounding.Species != 0 {
		t.Fatalf("expected the near agent (species 0) to match, got species %d", ctx[0].Surrounding.Species)
	}
}
