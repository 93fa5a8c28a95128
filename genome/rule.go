package genome

import "github.com/pthm-cable/swarmgrammar/actor"

// DistSurrounding pairs a sensed neighbor with its exact 3D distance, the
// shape ChunkedWorld.GetContextWithin returns and ContextRule matching
// consumes (spec §4.2, §4.3).
type DistSurrounding struct {
	Dist        float32
	Surrounding actor.SurroundingIndex
}

// ContextRule is one candidate rewrite for a species: it fires when its
// context multiset is found among an agent's neighbors within range
// (spec §3 "ContextRule", §4.3 "Rule Engine").
type ContextRule struct {
	Context     []actor.SurroundingIndex
	Range       float32
	Weight      float32
	Persist     bool
	Replacement Replacement
}

// DefaultContextRule mirrors the reference implementation's
// `impl Default for ContextRule` (empty context, weight 1, persist true,
// no-op replacement, range 5).
func DefaultContextRule() ContextRule {
	return ContextRule{Weight: 1, Persist: true, Range: 5, Replacement: Replacement{Kind: ReplacementNone}}
}

// IsApplicable reports whether r's context multiset is contained in
// context, restricted to entries within r.Range (spec §4.3 step 2). An
// empty rule context always matches. Matching is greedy left-to-right:
// each context entry is consumed by at most one of r.Context's required
// entries, in declaration order — the reference algorithm
// (core/src/swarm/genome.rs's ContextRule::is_applicable).
func (r ContextRule) IsApplicable(context []DistSurrounding) bool {
	if len(r.Context) == 0 {
		return true
	}

	checkset := make([]actor.SurroundingIndex, len(r.Context))
	copy(checkset, r.Context)

	for _, ds := range context {
		if ds.Dist >= r.Range {
			continue
		}
		for i, want := range checkset {
			if want == ds.Surrounding {
				checkset = append(checkset[:i], checkset[i+1:]...)
				break
			}
		}
	}

	return len(checkset) == 0
}
