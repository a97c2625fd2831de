// Package dataset stores fully expanded definition sets in a three-level
// nested structure (group, selection, variation) and supports random
// sampling and declarative filtering over it.
package dataset

import (
	"math/rand"
	"time"

	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/materials"
	"github.com/spatialeval/scenegen/pkg/similarity"
)

var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return defaultRand
}

// Dataset is an immutable three-level collection of concrete definition
// snapshots: group (logical family of source definitions), selection (one
// source definition's full expansion), variation (one concrete leaf).
// Every filter returns a new dataset; the receiver is never mutated.
type Dataset struct {
	groups [][][]defs.ImmutableDefinition
}

// Create runs the full choice and material expansion for every source
// group and wraps the results. Each inner slice of sources is one group;
// each source definition inside it becomes one selection.
func Create(
	sourceGroups [][]defs.Definition,
	expander *materials.Expander,
	rng *rand.Rand,
	unshuffled bool,
) (*Dataset, error) {
	groups := make([][][]defs.ImmutableDefinition, 0, len(sourceGroups))
	for _, group := range sourceGroups {
		selections, err := defs.CompleteDefinitionList(group, expander, rng, unshuffled)
		if err != nil {
			return nil, err
		}
		groups = append(groups, selections)
	}
	return &Dataset{groups: groups}, nil
}

// GroupCount returns the number of groups.
func (d *Dataset) GroupCount() int {
	return len(d.groups)
}

// Len returns the total number of variation leaves.
func (d *Dataset) Len() int {
	total := 0
	for _, group := range d.groups {
		for _, selection := range group {
			total += len(selection)
		}
	}
	return total
}

// IsEmpty reports whether the dataset holds no variations.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// ChooseRandom draws uniformly at the group level, then the selection
// level, then the variation level. The three independent draws weight a
// rare one-variation selection the same as a selection with dozens of
// material variants, which is the intended sampling bias: a shape with
// many finishes should not dominate a shape with one. Returns false on an
// empty dataset.
func (d *Dataset) ChooseRandom(rng *rand.Rand) (defs.ImmutableDefinition, bool) {
	rng = rngOrDefault(rng)
	if len(d.groups) == 0 {
		return defs.ImmutableDefinition{}, false
	}
	group := d.groups[rng.Intn(len(d.groups))]
	if len(group) == 0 {
		return defs.ImmutableDefinition{}, false
	}
	selection := group[rng.Intn(len(group))]
	if len(selection) == 0 {
		return defs.ImmutableDefinition{}, false
	}
	return selection[rng.Intn(len(selection))], true
}

// Definitions flattens the dataset to a single list for exhaustive scans,
// optionally shuffled.
func (d *Dataset) Definitions(rng *rand.Rand, shuffled bool) []defs.ImmutableDefinition {
	var out []defs.ImmutableDefinition
	for _, group := range d.groups {
		for _, selection := range group {
			out = append(out, selection...)
		}
	}
	if shuffled {
		rng = rngOrDefault(rng)
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return out
}

// FilterOnCustom returns a new dataset keeping only the variations the
// predicate accepts. Selections and groups left empty by the filter are
// dropped, not kept as placeholders, so the three-draw sampling weights
// stay meaningful.
func (d *Dataset) FilterOnCustom(keep func(defs.ImmutableDefinition) bool) *Dataset {
	var groups [][][]defs.ImmutableDefinition
	for _, group := range d.groups {
		var selections [][]defs.ImmutableDefinition
		for _, selection := range group {
			var variations []defs.ImmutableDefinition
			for _, v := range selection {
				if keep(v) {
					variations = append(variations, v)
				}
			}
			if len(variations) > 0 {
				selections = append(selections, variations)
			}
		}
		if len(selections) > 0 {
			groups = append(groups, selections)
		}
	}
	return &Dataset{groups: groups}
}

// FilterOnTrained keeps only definitions with every untrained flag false.
func (d *Dataset) FilterOnTrained() *Dataset {
	return d.FilterOnCustom(defs.ImmutableDefinition.IsTrained)
}

// FilterOnUntrained keeps only definitions untrained along exactly the
// given axis: that flag set and the other four clear.
func (d *Dataset) FilterOnUntrained(axis string) *Dataset {
	return d.FilterOnCustom(func(def defs.ImmutableDefinition) bool {
		flags := map[string]bool{
			"category":    def.UntrainedCategory,
			"color":       def.UntrainedColor,
			"combination": def.UntrainedCombination,
			"shape":       def.UntrainedShape,
			"size":        def.UntrainedSize,
		}
		if !flags[axis] {
			return false
		}
		for name, set := range flags {
			if name != axis && set {
				return false
			}
		}
		return true
	})
}

// FilterOnSimilarExceptColor keeps definitions that match the target in
// shape and size but not in color.
func (d *Dataset) FilterOnSimilarExceptColor(target similarity.Facts) *Dataset {
	return d.filterOnAxis(similarity.AxisColor, target)
}

// FilterOnSimilarExceptShape keeps definitions that match the target in
// color and size but not in shape.
func (d *Dataset) FilterOnSimilarExceptShape(target similarity.Facts) *Dataset {
	return d.filterOnAxis(similarity.AxisShape, target)
}

// FilterOnSimilarExceptSize keeps definitions that match the target in
// shape and color but not in size.
func (d *Dataset) FilterOnSimilarExceptSize(target similarity.Facts) *Dataset {
	return d.filterOnAxis(similarity.AxisSize, target)
}

func (d *Dataset) filterOnAxis(axis similarity.Axis, target similarity.Facts) *Dataset {
	return d.FilterOnCustom(func(def defs.ImmutableDefinition) bool {
		return similarity.IsSimilarExcept(axis, similarity.FromDefinition(def), target)
	})
}

// FindSimilar tries the three similarity axes in random order and returns
// the first definition in the dataset similar to the target along that
// axis, tagged with the axis that differed. First match wins; an
// exhaustive best-match search is deliberately avoided. The false return
// is the normal "no similar definition exists here" outcome.
func (d *Dataset) FindSimilar(target similarity.Facts, rng *rand.Rand) (defs.ImmutableDefinition, similarity.Axis, bool) {
	rng = rngOrDefault(rng)

	axes := []similarity.Axis{similarity.AxisColor, similarity.AxisShape, similarity.AxisSize}
	rng.Shuffle(len(axes), func(i, j int) {
		axes[i], axes[j] = axes[j], axes[i]
	})

	candidates := d.Definitions(rng, true)
	for _, axis := range axes {
		for _, candidate := range candidates {
			if similarity.IsSimilarExcept(axis, similarity.FromDefinition(candidate), target) {
				return candidate, axis, true
			}
		}
	}
	return defs.ImmutableDefinition{}, "", false
}
