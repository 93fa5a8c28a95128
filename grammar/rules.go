package grammar

import (
	"math/rand"

	"github.com/pthm-cable/swarmgrammar/genome"
)

// filterApplicable returns the subset of rules whose context multiset is
// satisfied by ctx (spec §4.3 step 2).
func filterApplicable(rules []genome.ContextRule, ctx []genome.DistSurrounding) []genome.ContextRule {
	var out []genome.ContextRule
	for _, r := range rules {
		if r.IsApplicable(ctx) {
			out = append(out, r)
		}
	}
	return out
}

// maxRange returns the largest Range among rules, the radius a single
// context query must cover so every rule's own (narrower) IsApplicable
// check has enough candidates to filter from (spec §4.3 step 1).
func maxRange(rules []genome.ContextRule) float32 {
	var m float32
	for _, r := range rules {
		if r.Range > m {
			m = r.Range
		}
	}
	return m
}

// selectRule performs the weighted stochastic selection among applicable
// rules (spec §4.3 step 3): draw u uniformly in [0, sum of weights), then
// walk the rules in order accumulating a running total, returning the
// first rule whose running total is >= u. Non-positive total weight (all
// zero-weight rules) degrades to picking the first applicable rule.
func selectRule(rng *rand.Rand, applicable []genome.ContextRule) genome.ContextRule {
	var total float32
	for _, r := range applicable {
		total += r.Weight
	}
	if total <= 0 {
		return applicable[0]
	}

	u := rng.Float32() * total
	var running float32
	for _, r := range applicable {
		running += r.Weight
		if running >= u {
			return r
		}
	}
	return applicable[len(applicable)-1]
}
