package genome

import (
	"fmt"

	"github.com/pthm-cable/swarmgrammar/actor"
	"github.com/pthm-cable/swarmgrammar/vecmath"
)

// DummySwarmGenome is the human-authored, string-keyed genome shape: every
// place a SwarmGenome stores a numeric SpeciesIndex/ArtifactIndex, a
// DummySwarmGenome stores the declared identifier instead (spec §3, and
// the expanded spec's "Supplemented Features" — string-identifier
// validation mirrors core/src/swarm/dummies.rs's DummySwarmGenome).
type DummySwarmGenome struct {
	SpeciesMap  map[string]DummySpecies  `yaml:"species"`
	ArtifactMap map[string]DummyArtifact `yaml:"artifacts"`
	StartDist   DummyDistribution        `yaml:"start"`
	Strategy    DummyApplicationStrategy `yaml:"strategy"`
	Terrain     DummyTerrain             `yaml:"terrain"`
}

// DummyTerrain is Terrain with its influence identifiers unresolved.
type DummyTerrain struct {
	Size         int                `yaml:"size"`
	Spacing      float32            `yaml:"spacing"`
	InfluencedBy map[string]float32 `yaml:"influenced_by"`
}

// DummyApplicationStrategy is ApplicationStrategy before its offset
// default (offset defaults to every, per the reference implementation's
// `offset.unwrap_or_else(|| dummy.every)`) is resolved.
type DummyApplicationStrategy struct {
	Every  int  `yaml:"every"`
	Offset *int `yaml:"offset,omitempty"`
}

// DummyArtifact is ArtifactType before validation.
type DummyArtifact struct {
	ColorIndex int `yaml:"color_index"`
}

// DummySpecies is Species with every SurroundingIndex reference expressed
// as a string identifier instead of a resolved index.
type DummySpecies struct {
	Separation float32 `yaml:"separation"`
	Alignment  float32 `yaml:"alignment"`
	Cohesion   float32 `yaml:"cohesion"`
	Randomness float32 `yaml:"randomness"`
	Center     float32 `yaml:"center"`
	Mass       float32 `yaml:"mass"`
	Floor      float32 `yaml:"floor"`
	Bias       [3]float32 `yaml:"bias"`
	Gradient   float32 `yaml:"gradient"`
	Normal     float32 `yaml:"normal"`
	Slope      float32 `yaml:"slope"`

	NormalSpeed     float32 `yaml:"normal_speed"`
	MaxSpeed        float32 `yaml:"max_speed"`
	MaxAcceleration float32 `yaml:"max_acceleration"`
	Pacekeeping     float32 `yaml:"pacekeeping"`

	ViewDistance float32 `yaml:"view_distance"`
	ViewAngle    float32 `yaml:"view_angle"`
	SepDistance  float32 `yaml:"sep_distance"`

	AxisConstraint [3]float32 `yaml:"axis_constraint"`
	Noclip         bool       `yaml:"noclip"`

	Energy DummyEnergy `yaml:"energy"`

	InfluencedBy map[string]float32 `yaml:"influenced_by"`
	Rules        []DummyContextRule `yaml:"rules"`
	ColorIndex   int                `yaml:"color_index"`
	HandDownSeed bool               `yaml:"hand_down_seed"`
}

// DummyEnergy is Energy with its on_zero Replacement (if any) left in
// dummy form.
type DummyEnergy struct {
	OnMovement    MovementEnergy  `yaml:"on_movement"`
	OnZero        DummyZeroEnergy `yaml:"on_zero"`
	OnReplication ReplicationEnergy `yaml:"on_replication"`
	ForOffspring  OffspringEnergy `yaml:"for_offspring"`
}

// DummyZeroEnergy is ZeroEnergy with its Replace replacement in dummy
// form.
type DummyZeroEnergy struct {
	Kind        ZeroEnergyKind    `yaml:"kind"`
	Threshold   uint16            `yaml:"threshold,omitempty"`
	Replacement *DummyReplacement `yaml:"replacement,omitempty"`
}

// DummyContextRule is ContextRule with its context/replacement identifiers
// unresolved.
type DummyContextRule struct {
	Context     []string          `yaml:"context"`
	Range       float32           `yaml:"range"`
	Weight      float32           `yaml:"weight"`
	Persist     bool              `yaml:"persist"`
	Replacement DummyReplacement  `yaml:"replacement"`
}

// DummyReplacement is Replacement with its SurroundingIndex references
// expressed as string identifiers.
type DummyReplacement struct {
	Kind ReplacementKind `yaml:"kind"`

	Simple []string           `yaml:"simple,omitempty"`
	Multi  []DummyReplacement `yaml:"multi,omitempty"`

	SpreadSpecies   string  `yaml:"spread_species,omitempty"`
	SpreadCount     int     `yaml:"spread_count,omitempty"`
	SpreadOffsetDeg float32 `yaml:"spread_offset_deg,omitempty"`
}

// DummyDistribution is Distribution with its SurroundingIndex references
// expressed as string identifiers.
type DummyDistribution struct {
	Kind DistributionKind `yaml:"kind"`

	Pos         [3]float32             `yaml:"pos,omitempty"`
	Surrounding string                 `yaml:"surrounding,omitempty"`
	Counts      []DummyCountSurrounding `yaml:"counts,omitempty"`

	GridCount   int     `yaml:"grid_count,omitempty"`
	GridSpacing float32 `yaml:"grid_spacing,omitempty"`

	Multi []DummyDistribution `yaml:"multi,omitempty"`
}

// DummyCountSurrounding is CountSurrounding with an unresolved identifier.
type DummyCountSurrounding struct {
	Count       int    `yaml:"count"`
	Surrounding string `yaml:"surrounding"`
}

// nameTables resolves string identifiers to SpeciesIndex/ArtifactIndex.
type nameTables struct {
	species  map[string]actor.SpeciesIndex
	artifact map[string]actor.ArtifactIndex
}

func (t nameTables) resolve(identifier string) (actor.SurroundingIndex, error) {
	if idx, ok := t.species[identifier]; ok {
		return actor.AgentSurrounding(idx), nil
	}
	if idx, ok := t.artifact[identifier]; ok {
		return actor.ArtifactSurrounding(idx), nil
	}
	return actor.SurroundingIndex{}, fmt.Errorf("identifier %q not defined", identifier)
}

// Validate converts d into a fully-resolved SwarmGenome, erroring on any
// unknown identifier and on a Spread replacement targeting an artifact
// (spec §7 "a genome fails to validate": unknown identifiers, and Spread
// naming an artifact). Grounded on core/src/swarm/genome.rs's
// `impl TryFrom<DummySwarmGenome> for SwarmGenome`.
func (d *DummySwarmGenome) Validate() (*SwarmGenome, error) {
	tables := nameTables{species: map[string]actor.SpeciesIndex{}, artifact: map[string]actor.ArtifactIndex{}}

	speciesNames := make([]string, 0, len(d.SpeciesMap))
	for name := range d.SpeciesMap {
		speciesNames = append(speciesNames, name)
	}
	for i, name := range speciesNames {
		tables.species[name] = actor.SpeciesIndex(i)
	}

	artifactNames := make([]string, 0, len(d.ArtifactMap))
	for name := range d.ArtifactMap {
		artifactNames = append(artifactNames, name)
	}
	for i, name := range artifactNames {
		tables.artifact[name] = actor.ArtifactIndex(i)
	}

	speciesOut := make([]Species, len(speciesNames))
	for name, id := range tables.species {
		dummy := d.SpeciesMap[name]
		sp, err := convertSpecies(tables, int(id), &dummy)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", name, err)
		}
		speciesOut[id] = *sp
	}

	artifactOut := make([]ArtifactType, len(artifactNames))
	for name, id := range tables.artifact {
		artifactOut[id] = ArtifactType{ColorIndex: d.ArtifactMap[name].ColorIndex}
	}

	startDist, err := convertDistribution(tables, &d.StartDist)
	if err != nil {
		return nil, fmt.Errorf("start distribution: %w", err)
	}

	terrain, err := convertTerrain(tables, &d.Terrain)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}

	return &SwarmGenome{
		SpeciesMap:  speciesOut,
		ArtifactMap: artifactOut,
		StartDist:   *startDist,
		Strategy:    convertStrategy(d.Strategy),
		Terrain:     *terrain,
	}, nil
}

// convertTerrain resolves a DummyTerrain's string-keyed influence weights
// into SurroundingIndex references, the same unknown-identifier validation
// every other identifier-bearing field goes through (spec §7).
func convertTerrain(tables nameTables, d *DummyTerrain) (*Terrain, error) {
	influences := make(map[actor.SurroundingIndex]float32, len(d.InfluencedBy))
	for identifier, factor := range d.InfluencedBy {
		idx, err := tables.resolve(identifier)
		if err != nil {
			return nil, err
		}
		influences[idx] = factor
	}
	return &Terrain{Size: d.Size, Spacing: d.Spacing, InfluencedBy: influences}, nil
}

func convertStrategy(d DummyApplicationStrategy) ApplicationStrategy {
	offset := d.Every
	if d.Offset != nil {
		offset = *d.Offset
	}
	return ApplicationStrategy{Every: d.Every, Offset: offset}
}

func convertSpecies(tables nameTables, id int, d *DummySpecies) (*Species, error) {
	influences := make(map[actor.SurroundingIndex]float32, len(d.InfluencedBy))
	for identifier, factor := range d.InfluencedBy {
		idx, err := tables.resolve(identifier)
		if err != nil {
			return nil, err
		}
		influences[idx] = factor
	}

	rules := make([]ContextRule, len(d.Rules))
	for i, dr := range d.Rules {
		context := make([]actor.SurroundingIndex, len(dr.Context))
		for j, identifier := range dr.Context {
			idx, err := tables.resolve(identifier)
			if err != nil {
				return nil, err
			}
			context[j] = idx
		}
		repl, err := convertReplacement(tables, &dr.Replacement)
		if err != nil {
			return nil, err
		}
		rules[i] = ContextRule{Context: context, Range: dr.Range, Weight: dr.Weight, Persist: dr.Persist, Replacement: *repl}
	}

	energy, err := convertEnergy(tables, &d.Energy)
	if err != nil {
		return nil, err
	}

	return &Species{
		Index:           actor.SpeciesIndex(id),
		Separation:      d.Separation,
		Alignment:       d.Alignment,
		Cohesion:        d.Cohesion,
		Randomness:      d.Randomness,
		Center:          d.Center,
		Mass:            d.Mass,
		Floor:           d.Floor,
		Bias:            vecmath.Vector3{X: d.Bias[0], Y: d.Bias[1], Z: d.Bias[2]},
		Gradient:        d.Gradient,
		Normal:          d.Normal,
		Slope:           d.Slope,
		NormalSpeed:     d.NormalSpeed,
		MaxSpeed:        d.MaxSpeed,
		MaxAcceleration: d.MaxAcceleration,
		Pacekeeping:     d.Pacekeeping,
		ViewDistance:    d.ViewDistance,
		ViewAngle:       d.ViewAngle,
		SepDistance:     d.SepDistance,
		AxisConstraint:  vecmath.Vector3{X: d.AxisConstraint[0], Y: d.AxisConstraint[1], Z: d.AxisConstraint[2]},
		Noclip:          d.Noclip,
		Energy:          *energy,
		InfluencedBy:    influences,
		Rules:           rules,
		ColorIndex:      d.ColorIndex,
		HandDownSeed:    d.HandDownSeed,
	}, nil
}

func convertEnergy(tables nameTables, d *DummyEnergy) (*Energy, error) {
	var repl *Replacement
	if d.OnZero.Kind == ZeroReplace {
		if d.OnZero.Replacement == nil {
			return nil, fmt.Errorf("on_zero: Replace requires a replacement")
		}
		r, err := convertReplacement(tables, d.OnZero.Replacement)
		if err != nil {
			return nil, fmt.Errorf("on_zero replacement: %w", err)
		}
		repl = r
	}
	return &Energy{
		OnMovement:    d.OnMovement,
		OnZero:        ZeroEnergy{Kind: d.OnZero.Kind, Threshold: d.OnZero.Threshold, Replacement: repl},
		OnReplication: d.OnReplication,
		ForOffspring:  d.ForOffspring,
	}, nil
}

func convertReplacement(tables nameTables, d *DummyReplacement) (*Replacement, error) {
	switch d.Kind {
	case ReplacementNone:
		return &Replacement{Kind: ReplacementNone}, nil

	case ReplacementSimple:
		idxs := make([]actor.SurroundingIndex, len(d.Simple))
		for i, identifier := range d.Simple {
			idx, err := tables.resolve(identifier)
			if err != nil {
				return nil, err
			}
			idxs[i] = idx
		}
		return &Replacement{Kind: ReplacementSimple, Simple: idxs}, nil

	case ReplacementMulti:
		subs := make([]Replacement, len(d.Multi))
		for i := range d.Multi {
			r, err := convertReplacement(tables, &d.Multi[i])
			if err != nil {
				return nil, err
			}
			subs[i] = *r
		}
		return &Replacement{Kind: ReplacementMulti, Multi: subs}, nil

	case ReplacementSpread:
		idx, err := tables.resolve(d.SpreadSpecies)
		if err != nil {
			return nil, err
		}
		if !idx.IsAgent() {
			return nil, fmt.Errorf("artifact %q is not supported in Spread", d.SpreadSpecies)
		}
		return &Replacement{Kind: ReplacementSpread, SpreadSpecies: idx.Species, SpreadCount: d.SpreadCount, SpreadOffsetDeg: d.SpreadOffsetDeg}, nil
	}

	return nil, fmt.Errorf("unknown replacement kind %d", d.Kind)
}

func convertDistribution(tables nameTables, d *DummyDistribution) (*Distribution, error) {
	switch d.Kind {
	case DistributionSingle:
		idx, err := tables.resolve(d.Surrounding)
		if err != nil {
			return nil, err
		}
		return &Distribution{Kind: DistributionSingle, Pos: vecmath.Vector3{X: d.Pos[0], Y: d.Pos[1], Z: d.Pos[2]}, Surrounding: idx}, nil

	case DistributionSingularity:
		counts := make([]CountSurrounding, len(d.Counts))
		for i, c := range d.Counts {
			idx, err := tables.resolve(c.Surrounding)
			if err != nil {
				return nil, err
			}
			counts[i] = CountSurrounding{Count: c.Count, Surrounding: idx}
		}
		return &Distribution{Kind: DistributionSingularity, Pos: vecmath.Vector3{X: d.Pos[0], Y: d.Pos[1], Z: d.Pos[2]}, Counts: counts}, nil

	case DistributionGrid:
		idx, err := tables.resolve(d.Surrounding)
		if err != nil {
			return nil, err
		}
		return &Distribution{Kind: DistributionGrid, GridCount: d.GridCount, GridSpacing: d.GridSpacing, Surrounding: idx}, nil

	case DistributionMulti:
		subs := make([]Distribution, len(d.Multi))
		for i := range d.Multi {
			sub, err := convertDistribution(tables, &d.Multi[i])
			if err != nil {
				return nil, err
			}
			subs[i] = *sub
		}
		return &Distribution{Kind: DistributionMulti, Multi: subs}, nil
	}

	return nil, fmt.Errorf("unknown distribution kind %d", d.Kind)
}
