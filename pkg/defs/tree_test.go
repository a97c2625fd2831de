package defs

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialeval/scenegen/pkg/materials"
	"github.com/spatialeval/scenegen/pkg/sizes"
)

func TestFinalizeEachChoiceCrossProduct(t *testing.T) {
	d := Definition{
		Type: "table",
		ChooseMaterialList: []MaterialOption{
			NewMaterialOption("wood"),
			NewMaterialOption("metal"),
		},
		ChooseSizeList: []sizes.Choice{
			testSizeChoice(0.5),
			testSizeChoice(1),
			testSizeChoice(2),
		},
	}

	resolved := FinalizeEachChoice(d)
	require.Len(t, resolved, 6)

	pairs := map[string]bool{}
	for _, r := range resolved {
		assert.True(t, r.IsConcrete(), "no leftover choose-lists allowed")
		key := fmt.Sprintf("%v|%v", r.MaterialCategory, r.Dimensions)
		assert.False(t, pairs[key], "duplicate pairing %s", key)
		pairs[key] = true
	}
}

func TestFinalizeEachChoiceExpandsTypeFirst(t *testing.T) {
	d := Definition{
		ChooseTypeList: []TypeOption{
			{
				Type: "sub_a",
				// This sub-type replaces the parent's material choices.
				ChooseMaterialList: []MaterialOption{
					NewMaterialOption("wood"),
					NewMaterialOption("metal"),
					NewMaterialOption("plastic"),
				},
			},
			{Type: "sub_b"},
		},
		ChooseMaterialList: []MaterialOption{
			NewMaterialOption("ceramic"),
			NewMaterialOption("fabric"),
		},
		ChooseSizeList: []sizes.Choice{testSizeChoice(1)},
	}

	resolved := FinalizeEachChoice(d)

	// sub_a contributes its injected 3 material choices, sub_b keeps the
	// parent's 2. Resolving material before type would lose sub_a's.
	counts := map[string]int{}
	for _, r := range resolved {
		counts[r.Type]++
	}
	assert.Equal(t, 3, counts["sub_a"])
	assert.Equal(t, 2, counts["sub_b"])
	assert.Len(t, resolved, 5)
}

func TestFinalizeDefinitionResolvesEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := Definition{
		ChooseTypeList: []TypeOption{
			{Type: "sub_a", ChooseSizeList: []sizes.Choice{testSizeChoice(1), testSizeChoice(2)}},
			{Type: "sub_b"},
		},
		ChooseMaterialList: []MaterialOption{
			NewMaterialOption("wood"),
			NewMaterialOption("metal"),
		},
		ChooseSizeList: []sizes.Choice{testSizeChoice(0.5)},
	}

	for i := 0; i < 20; i++ {
		resolved := FinalizeDefinition(d, rng)
		assert.True(t, resolved.IsConcrete())
		assert.NotEmpty(t, resolved.Type)
		assert.NotZero(t, resolved.Mass)
	}

	// The input is untouched.
	assert.Len(t, d.ChooseTypeList, 2)
	assert.Len(t, d.ChooseMaterialList, 2)
}

func TestFinalizeMaterialsExpandsCategories(t *testing.T) {
	expander := materials.NewExpander()
	d := Definition{Type: "trophy", MaterialCategory: []string{"metal"}}

	leaves := FinalizeMaterials(d, expander)
	require.Len(t, leaves, len(materials.In("metal")))
	for _, leaf := range leaves {
		assert.Len(t, leaf.Materials, 1)
		assert.NotEmpty(t, leaf.Color)
	}
}

func TestFinalizeMaterialsPassesThroughLiterals(t *testing.T) {
	expander := materials.NewExpander()
	d := Definition{
		Type:      "apple_1",
		Materials: []string{"materials/fruit/apple_red"},
		Color:     []string{"red"},
	}

	leaves := FinalizeMaterials(d, expander)
	require.Len(t, leaves, 1)
	assert.Equal(t, d.Materials, leaves[0].Materials)
	assert.Equal(t, d.Color, leaves[0].Color)
}

func TestCompleteDefinitionListEndToEnd(t *testing.T) {
	// A definition with two material choices and no size choices expands
	// to two concrete leaves before color expansion; each leaf then
	// multiplies by its category's registered material count.
	source := Definition{
		Type: "b",
		ChooseMaterialList: []MaterialOption{
			NewMaterialOption("metal"),
			NewMaterialOption("plastic"),
		},
		ChooseSizeList: []sizes.Choice{testSizeChoice(1)},
	}

	preColor := FinalizeEachChoice(New(source.Clone()))
	require.Len(t, preColor, 2)

	selections, err := CompleteDefinitionList(
		[]Definition{source}, materials.NewExpander(), nil, true)
	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.Len(t, selections[0], len(materials.In("metal"))+len(materials.In("plastic")))
}

func TestCompleteDefinitionListDeterministicWhenUnshuffled(t *testing.T) {
	group := []Definition{
		{
			Type: "table",
			ChooseMaterialList: []MaterialOption{
				NewMaterialOption("wood"),
				NewMaterialOption("metal"),
			},
			ChooseSizeList: []sizes.Choice{testSizeChoice(1), testSizeChoice(2)},
		},
		{
			Type:               "cup",
			ChooseMaterialList: []MaterialOption{NewMaterialOption("ceramic")},
			ChooseSizeList:     []sizes.Choice{testSizeChoice(1)},
		},
	}

	first, err := CompleteDefinitionList(group, materials.NewExpander(), rand.New(rand.NewSource(1)), true)
	require.NoError(t, err)
	second, err := CompleteDefinitionList(group, materials.NewExpander(), rand.New(rand.NewSource(99)), true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompleteDefinitionListDeduplicates(t *testing.T) {
	// Two identical size choices collapse to one variation per material.
	source := Definition{
		Type:               "cup",
		ChooseMaterialList: []MaterialOption{NewMaterialOption("ceramic"), NewMaterialOption("ceramic")},
		ChooseSizeList:     []sizes.Choice{testSizeChoice(1)},
	}

	selections, err := CompleteDefinitionList(
		[]Definition{source}, materials.NewExpander(), nil, true)
	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.Len(t, selections[0], len(materials.In("ceramic")))
}
