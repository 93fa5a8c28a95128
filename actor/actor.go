// Package actor defines the three kinds of simulation-level entities a
// swarm grammar manipulates — Agent, Artifact, and Buoy — and the tagged
// SurroundingIndex used wherever a rule or influence map talks about "a
// nearby thing of kind X" (spec §3 "Actor"). Grounded on
// core/src/swarm/actor.rs and core/src/swarm/genome.rs's SurroundingIndex.
package actor

// SpeciesIndex identifies an entry in a SwarmGenome's species table.
type SpeciesIndex int

// ArtifactIndex identifies an entry in a SwarmGenome's artifact-type table.
type ArtifactIndex int

// SurroundingKind discriminates a SurroundingIndex between agent and
// artifact.
type SurroundingKind uint8

const (
	SurroundingAgent SurroundingKind = iota
	SurroundingArtifact
)

// SurroundingIndex is the tagged union `Agent(species_idx) |
// Artifact(artifact_idx)` rules, influence maps, and context matching use
// to refer to "a nearby thing of kind X" (spec §3). It is comparable, so
// it can key an influence map directly.
type SurroundingIndex struct {
	Kind     SurroundingKind
	Species  SpeciesIndex
	Artifact ArtifactIndex
}

// AgentSurrounding builds a SurroundingIndex referring to an agent species.
func AgentSurrounding(s SpeciesIndex) SurroundingIndex {
	return SurroundingIndex{Kind: SurroundingAgent, Species: s}
}

// ArtifactSurrounding builds a SurroundingIndex referring to an artifact
// type.
func ArtifactSurrounding(a ArtifactIndex) SurroundingIndex {
	return SurroundingIndex{Kind: SurroundingArtifact, Artifact: a}
}

// IsAgent reports whether s refers to an agent species.
func (s SurroundingIndex) IsAgent() bool { return s.Kind == SurroundingAgent }
