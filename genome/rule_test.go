package genome

import (
	"testing"

	"github.com/pthm-cable/swarmgrammar/actor"
)

func TestContextRuleEmptyContextAlwaysApplies(t *testing.T) {
	r := DefaultContextRule()
	if !r.IsApplicable(nil) {
		t.Fatal("empty-context rule must always apply")
	}
}

func TestContextRuleGreedyMultisetMatch(t *testing.T) {
	preyA := actor.AgentSurrounding(0)
	preyB := actor.AgentSurrounding(1)

	r := ContextRule{
		Context: []actor.SurroundingIndex{preyA, preyA, preyB},
		Range:   10,
	}

	// Two preyA and one preyB within range: satisfies the rule exactly.
	ctx := []DistSurrounding{
		{Dist: 1, Surrounding: preyA},
		{Dist: 2, Surrounding: preyA},
		{Dist: 3, Surrounding: preyB},
	}
	if !r.IsApplicable(ctx) {
		t.Fatal("expected rule to match exact multiset")
	}

	// Only one preyA present: insufficient.
	short := []DistSurrounding{
		{Dist: 1, Surrounding: preyA},
		{Dist: 3, Surrounding: preyB},
	}
	if r.IsApplicable(short) {
		t.Fatal("expected rule not to match with insufficient preyA count")
	}

	// One preyA is out of range: should not count toward the match.
	outOfRange := []DistSurrounding{
		{Dist: 1, Surrounding: preyA},
		{Dist: 20, Surrounding: preyA},
		{Dist: 3, Surrounding: preyB},
	}
	if r.IsApplicable(outOfRange) {
		t.Fatal("expected out-of-range neighbor to be excluded from matching")
	}
}

func TestApplicationStrategyCountdown(t *testing.T) {
	s := ApplicationStrategy{Every: 2, Offset: 2}

	// offset=2 -> tick -> 1 (not due)
	s.Tick()
	if s.ShouldReplace() {
		t.Fatal("should not replace at offset=1")
	}
	// offset=1 -> tick -> 0 (due: ShouldReplace checks *after* tick, and
	// reports true while offset is 0)
	s.Tick()
	if !s.ShouldReplace() {
		t.Fatal("expected ShouldReplace once offset reaches 0")
	}
	// offset=0 -> tick -> resets to every (2)
	s.Tick()
	if s.ShouldReplace() {
		t.Fatal("expected offset to reset to Every after reaching 0")
	}
	if s.Offset != s.Every {
		t.Fatalf("offset = %d, want reset to every = %d", s.Offset, s.Every)
	}
}
