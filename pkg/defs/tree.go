package defs

import (
	"math/rand"
	"time"

	"github.com/spatialeval/scenegen/pkg/materials"
)

// Fallback source for callers that pass a nil generator. Seeded once at
// load; reproducible runs must inject their own seeded source.
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return defaultRand
}

// FinalizeDefinition collapses one randomly chosen branch from each
// non-empty choose-list and returns the concrete copy. Type resolves
// before material and size: a chosen sub-type can inject fresh material
// or size lists, and those must still be drawn from. Color and material
// expansion is not done here; that belongs to the material expander.
func FinalizeDefinition(d Definition, rng *rand.Rand) Definition {
	rng = rngOrDefault(rng)
	out := d.Clone()
	for !out.IsConcrete() {
		switch {
		case len(out.ChooseTypeList) > 0:
			AssignChosenType(&out, out.ChooseTypeList[rng.Intn(len(out.ChooseTypeList))])
		case len(out.ChooseMaterialList) > 0:
			AssignChosenMaterial(&out, out.ChooseMaterialList[rng.Intn(len(out.ChooseMaterialList))])
		default:
			AssignChosenSize(&out, out.ChooseSizeList[rng.Intn(len(out.ChooseSizeList))])
		}
	}
	return out
}

// FinalizeEachChoice exhaustively enumerates the cross-product of every
// choice across all three choose-lists, producing one concrete definition
// per combination. Types expand first for the same injection reason as in
// FinalizeDefinition; resolving in another order silently drops the
// combinations a sub-type carries.
func FinalizeEachChoice(d Definition) []Definition {
	switch {
	case len(d.ChooseTypeList) > 0:
		var out []Definition
		for _, t := range d.ChooseTypeList {
			branch := d.Clone()
			AssignChosenType(&branch, t)
			out = append(out, FinalizeEachChoice(branch)...)
		}
		return out

	case len(d.ChooseMaterialList) > 0:
		var out []Definition
		for _, m := range d.ChooseMaterialList {
			branch := d.Clone()
			AssignChosenMaterial(&branch, m)
			out = append(out, FinalizeEachChoice(branch)...)
		}
		return out

	case len(d.ChooseSizeList) > 0:
		out := make([]Definition, 0, len(d.ChooseSizeList))
		for _, s := range d.ChooseSizeList {
			branch := d.Clone()
			AssignChosenSize(&branch, s)
			out = append(out, branch)
		}
		return out
	}

	return []Definition{d.Clone()}
}

// FinalizeMaterials expands a concrete definition's material category
// slots into one definition per registered material combination. A
// definition without category slots passes through as a single copy with
// its literal materials and colors untouched.
func FinalizeMaterials(d Definition, expander *materials.Expander) []Definition {
	combos := expander.Expand(d.MaterialCategory)
	out := make([]Definition, 0, len(combos))
	for _, combo := range combos {
		leaf := d.Clone()
		if combo.Materials != nil {
			leaf.Materials = combo.Materials
		}
		if combo.Colors != nil {
			leaf.Color = combo.Colors
		}
		if combo.UntrainedColor {
			leaf.UntrainedColor = true
		}
		out = append(out, leaf)
	}
	return out
}

// CompleteDefinitionList is the top-level expansion driver. For every
// definition in the input group it runs the full choice expansion and
// then the full material/color expansion, producing one selection (the
// slice of concrete variation leaves, deduplicated) per source
// definition. All levels are shuffled unless unshuffled is set, the
// escape hatch deterministic tests rely on.
func CompleteDefinitionList(
	group []Definition,
	expander *materials.Expander,
	rng *rand.Rand,
	unshuffled bool,
) ([][]ImmutableDefinition, error) {
	rng = rngOrDefault(rng)

	selections := make([][]ImmutableDefinition, 0, len(group))
	for _, source := range group {
		var variations []ImmutableDefinition
		seen := map[string]bool{}

		for _, resolved := range FinalizeEachChoice(source) {
			for _, leaf := range FinalizeMaterials(resolved, expander) {
				snapshot, err := FromDefinition(leaf)
				if err != nil {
					return nil, err
				}
				if key := snapshot.Key(); !seen[key] {
					seen[key] = true
					variations = append(variations, snapshot)
				}
			}
		}

		if !unshuffled {
			rng.Shuffle(len(variations), func(i, j int) {
				variations[i], variations[j] = variations[j], variations[i]
			})
		}
		selections = append(selections, variations)
	}

	if !unshuffled {
		rng.Shuffle(len(selections), func(i, j int) {
			selections[i], selections[j] = selections[j], selections[i]
		})
	}
	return selections, nil
}
