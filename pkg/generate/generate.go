// Package generate ties the resolution engine together: it turns a
// generation spec into a filtered dataset and a finished scene.
package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spatialeval/scenegen/pkg/dataset"
	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/materials"
	"github.com/spatialeval/scenegen/pkg/scene"
	"github.com/spatialeval/scenegen/pkg/spec"
	"github.com/spatialeval/scenegen/pkg/validation"
)

// Every catalog shape is expanded at these uniform scales.
var defaultSizeMultipliers = []float64{0.5, 1, 2}

// BuildDataset expands the shape types selected by the spec into a
// dataset, memoized process-wide, then applies the spec's trained or
// untrained filtering. The memo key is the spec's declared dataset name
// (or the joined type list when unnamed).
func BuildDataset(
	s *spec.GenerationSpec,
	registry *defs.Registry,
	expander *materials.Expander,
	rng *rand.Rand,
) (*dataset.Dataset, error) {
	types := s.Objects.IncludeTypes
	if len(types) == 0 {
		types = registry.Types()
	}
	excluded := map[string]bool{}
	for _, t := range s.Objects.ExcludeTypes {
		excluded[t] = true
	}

	name := s.Objects.Dataset
	if name == "" {
		name = strings.Join(types, ",")
	}

	ds, err := dataset.Get(name, s.Unshuffled, func() (*dataset.Dataset, error) {
		var groups [][]defs.Definition
		for _, typeName := range types {
			if excluded[typeName] {
				continue
			}
			d, err := registry.CreateVariableDefinitionFromBase(typeName, defaultSizeMultipliers, nil, nil)
			if err != nil {
				return nil, fmt.Errorf("building dataset %q: %w", name, err)
			}
			groups = append(groups, []defs.Definition{d})
		}
		return dataset.Create(groups, expander, rng, s.Unshuffled)
	})
	if err != nil {
		return nil, err
	}

	if s.Objects.UntrainedAxis != "" {
		return ds.FilterOnUntrained(s.Objects.UntrainedAxis), nil
	}
	return ds.FilterOnTrained(), nil
}

// Rng returns the pseudo-random source for the spec: seeded from the spec
// when a seed is declared, time-seeded otherwise.
func Rng(s *spec.GenerationSpec) *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Scene runs the whole pipeline for one spec: dataset expansion,
// filtering, sampling, placement, and spatial validation.
func Scene(s *spec.GenerationSpec) (*scene.Scene, *validation.Report, error) {
	rng := Rng(s)

	ds, err := BuildDataset(s, defs.DefaultRegistry(), materials.NewExpander(), rng)
	if err != nil {
		return nil, nil, err
	}

	sc, report := scene.Assemble(s, ds, rng)
	return sc, report, nil
}
