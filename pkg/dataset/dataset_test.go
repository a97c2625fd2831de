package dataset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/geom"
	"github.com/spatialeval/scenegen/pkg/similarity"
)

func leaf(typeName string, mutate func(*defs.ImmutableDefinition)) defs.ImmutableDefinition {
	d := defs.ImmutableDefinition{
		Type:       typeName,
		Mass:       1,
		Dimensions: geom.Vec(0.2, 0.2, 0.2),
		Size:       "tiny",
	}
	if mutate != nil {
		mutate(&d)
	}
	return d
}

func datasetOf(groups [][][]defs.ImmutableDefinition) *Dataset {
	return &Dataset{groups: groups}
}

// untrainedFixture is the documented 8-definition set: one definition
// untrained on every axis, one per single axis, and two fully trained.
func untrainedFixture() *Dataset {
	return datasetOf([][][]defs.ImmutableDefinition{{{
		leaf("all_flags", func(d *defs.ImmutableDefinition) {
			d.UntrainedCategory = true
			d.UntrainedColor = true
			d.UntrainedCombination = true
			d.UntrainedShape = true
			d.UntrainedSize = true
		}),
		leaf("only_category", func(d *defs.ImmutableDefinition) { d.UntrainedCategory = true }),
		leaf("only_color", func(d *defs.ImmutableDefinition) { d.UntrainedColor = true }),
		leaf("only_combination", func(d *defs.ImmutableDefinition) { d.UntrainedCombination = true }),
		leaf("only_shape", func(d *defs.ImmutableDefinition) { d.UntrainedShape = true }),
		leaf("only_size", func(d *defs.ImmutableDefinition) { d.UntrainedSize = true }),
		leaf("trained_a", nil),
		leaf("trained_b", nil),
	}}})
}

func TestFilterOnTrained(t *testing.T) {
	filtered := untrainedFixture().FilterOnTrained()

	flat := filtered.Definitions(nil, false)
	require.Len(t, flat, 2)
	assert.Equal(t, "trained_a", flat[0].Type)
	assert.Equal(t, "trained_b", flat[1].Type)
}

func TestFilterOnUntrainedRequiresExactlyOneAxis(t *testing.T) {
	ds := untrainedFixture()

	for _, axis := range []string{"category", "color", "combination", "shape", "size"} {
		flat := ds.FilterOnUntrained(axis).Definitions(nil, false)
		require.Len(t, flat, 1, "axis %s", axis)
		assert.Equal(t, "only_"+axis, flat[0].Type)
	}
}

func TestFilterOnCustomDropsEmptyLevels(t *testing.T) {
	ds := datasetOf([][][]defs.ImmutableDefinition{
		{
			{leaf("keep_me", nil)},
			{leaf("drop_me", nil)},
		},
		{
			{leaf("drop_me_too", nil)},
		},
	})

	filtered := ds.FilterOnCustom(func(d defs.ImmutableDefinition) bool {
		return d.Type == "keep_me"
	})

	assert.Equal(t, 1, filtered.GroupCount())
	assert.Equal(t, 1, filtered.Len())

	// Original untouched.
	assert.Equal(t, 2, ds.GroupCount())
	assert.Equal(t, 3, ds.Len())
}

func TestChooseRandomOnEmptyDataset(t *testing.T) {
	_, ok := datasetOf(nil).ChooseRandom(rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestChooseRandomIsUniformOverSelections(t *testing.T) {
	rare := []defs.ImmutableDefinition{leaf("rare", nil)}
	common := make([]defs.ImmutableDefinition, 50)
	for i := range common {
		common[i] = leaf("common", nil)
	}

	ds := datasetOf([][][]defs.ImmutableDefinition{{rare, common}})
	rng := rand.New(rand.NewSource(42))

	const draws = 20000
	rareCount := 0
	for i := 0; i < draws; i++ {
		d, ok := ds.ChooseRandom(rng)
		require.True(t, ok)
		if d.Type == "rare" {
			rareCount++
		}
	}

	// Uniform over selections means ~50% despite the 1:50 variation
	// imbalance. 20000 draws put 5 sigma at about 1.8 points.
	ratio := float64(rareCount) / draws
	assert.InDelta(t, 0.5, ratio, 0.02)
}

func TestDefinitionsFlattensAllLevels(t *testing.T) {
	ds := datasetOf([][][]defs.ImmutableDefinition{
		{{leaf("a", nil)}, {leaf("b", nil), leaf("c", nil)}},
		{{leaf("d", nil)}},
	})

	flat := ds.Definitions(nil, false)
	require.Len(t, flat, 4)
	assert.Equal(t, "a", flat[0].Type)
	assert.Equal(t, "d", flat[3].Type)
}

func TestFindSimilarReportsAxis(t *testing.T) {
	target := similarity.Facts{
		Type:       "ball",
		Materials:  []string{"m1"},
		Colors:     []string{"red"},
		Dimensions: geom.Vec(0.2, 0.2, 0.2),
	}

	// Same shape and size, different material: similar except in color.
	candidate := leaf("ball", func(d *defs.ImmutableDefinition) {
		d.Materials = []string{"m2"}
		d.Color = []string{"blue"}
	})
	ds := datasetOf([][][]defs.ImmutableDefinition{{{candidate}}})

	found, axis, ok := ds.FindSimilar(target, rand.New(rand.NewSource(5)))
	require.True(t, ok)
	assert.Equal(t, similarity.AxisColor, axis)
	assert.Equal(t, "ball", found.Type)
}

func TestFindSimilarNothingFound(t *testing.T) {
	target := similarity.Facts{
		Type:       "ball",
		Materials:  []string{"m1"},
		Dimensions: geom.Vec(0.2, 0.2, 0.2),
	}

	// Identical on every axis, so nothing is "similar except" anything.
	candidate := leaf("ball", func(d *defs.ImmutableDefinition) {
		d.Materials = []string{"m1"}
	})
	ds := datasetOf([][][]defs.ImmutableDefinition{{{candidate}}})

	_, _, ok := ds.FindSimilar(target, rand.New(rand.NewSource(5)))
	assert.False(t, ok)
}

func TestCacheMemoizesPerNameAndMode(t *testing.T) {
	cache := NewCache()
	builds := 0
	build := func() (*Dataset, error) {
		builds++
		return datasetOf(nil), nil
	}

	first, err := cache.Get("pickupable", false, build)
	require.NoError(t, err)
	second, err := cache.Get("pickupable", false, build)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)

	// A different shuffle mode is a distinct entry.
	_, err = cache.Get("pickupable", true, build)
	require.NoError(t, err)
	assert.Equal(t, 2, builds)
}
