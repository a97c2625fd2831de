package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/geom"
)

func facts(typeName string, mats, colors []string, dims geom.Vector3) Facts {
	return Facts{Type: typeName, Materials: mats, Colors: colors, Dimensions: dims}
}

func TestDoMaterialsMatch(t *testing.T) {
	examples := []struct {
		name           string
		m1, m2, c1, c2 []string
		want           bool
	}{
		{"equal materials", []string{"a"}, []string{"a"}, nil, nil, true},
		{"different materials", []string{"a"}, []string{"b"}, nil, nil, false},
		{"colors overlap", nil, nil, []string{"x"}, []string{"x"}, true},
		{"colors disjoint", nil, nil, []string{"x"}, []string{"y"}, false},
		{"partial color overlap suffices", nil, nil, []string{"x", "y"}, []string{"y", "z"}, true},
		{"one side missing materials falls back to color", []string{"a"}, nil, []string{"x"}, []string{"x"}, true},
		{"material order matters", []string{"a", "b"}, []string{"b", "a"}, nil, nil, false},
	}

	for _, ex := range examples {
		t.Run(ex.name, func(t *testing.T) {
			assert.Equal(t, ex.want, DoMaterialsMatch(ex.m1, ex.m2, ex.c1, ex.c2))
		})
	}
}

func TestNormalizeTypeCollapsesFamilies(t *testing.T) {
	assert.Equal(t, "apple", NormalizeType("apple_1"))
	assert.Equal(t, "apple", NormalizeType("apple_2"))
	assert.Equal(t, "crayon", NormalizeType("crayon_blue"))
	assert.Equal(t, "ball", NormalizeType("ball"))
	assert.Equal(t, "table", NormalizeType("table"))
}

func TestIsSimilarExceptInColor(t *testing.T) {
	a := facts("ball", []string{"m1"}, []string{"red"}, geom.Vec(0.2, 0.2, 0.2))
	b := facts("ball", []string{"m2"}, []string{"blue"}, geom.Vec(0.22, 0.2, 0.18))

	assert.True(t, IsSimilarExceptInColor(a, b))
	assert.False(t, IsSimilarExceptInShape(a, b))
	assert.False(t, IsSimilarExceptInSize(a, b))
}

func TestIsSimilarExceptInShape(t *testing.T) {
	a := facts("ball", []string{"m1"}, []string{"red"}, geom.Vec(0.2, 0.2, 0.2))
	b := facts("block_a", []string{"m1"}, []string{"red"}, geom.Vec(0.2, 0.2, 0.2))

	assert.True(t, IsSimilarExceptInShape(a, b))
	assert.False(t, IsSimilarExceptInColor(a, b))
	assert.False(t, IsSimilarExceptInSize(a, b))
}

func TestIsSimilarExceptInSize(t *testing.T) {
	a := facts("ball", []string{"m1"}, []string{"red"}, geom.Vec(0.2, 0.2, 0.2))
	b := facts("ball", []string{"m1"}, []string{"red"}, geom.Vec(0.4, 0.4, 0.4))

	assert.True(t, IsSimilarExceptInSize(a, b))
	assert.False(t, IsSimilarExceptInColor(a, b))
	assert.False(t, IsSimilarExceptInShape(a, b))
}

func TestIdenticalObjectsAreNotSimilar(t *testing.T) {
	a := facts("ball", []string{"m1"}, []string{"red"}, geom.Vec(0.2, 0.2, 0.2))
	b := facts("ball", []string{"m1"}, []string{"red"}, geom.Vec(0.21, 0.19, 0.2))

	assert.False(t, IsSimilarExceptInColor(a, b))
	assert.False(t, IsSimilarExceptInShape(a, b))
	assert.False(t, IsSimilarExceptInSize(a, b))
}

func TestSizeToleranceBoundary(t *testing.T) {
	a := facts("ball", []string{"m1"}, nil, geom.Vec(0.2, 0.2, 0.2))
	within := facts("ball", []string{"m1"}, nil, geom.Vec(0.25, 0.2, 0.2))
	outside := facts("ball", []string{"m1"}, nil, geom.Vec(0.26, 0.2, 0.2))

	assert.False(t, IsSimilarExceptInSize(a, within), "0.05 is inside the tolerance")
	assert.True(t, IsSimilarExceptInSize(a, outside))
}

func TestClassifiersMutuallyExclusive(t *testing.T) {
	dims := []geom.Vector3{
		geom.Vec(0.2, 0.2, 0.2),
		geom.Vec(0.5, 0.3, 0.2),
	}
	types := []string{"ball", "block_a", "apple_1", "apple_2"}
	mats := [][]string{{"m1"}, {"m2"}}
	colors := [][]string{{"red"}, {"blue"}}

	var all []Facts
	for _, ty := range types {
		for _, m := range mats {
			for _, c := range colors {
				for _, d := range dims {
					all = append(all, facts(ty, m, c, d))
				}
			}
		}
	}

	for _, a := range all {
		for _, b := range all {
			count := 0
			for _, axis := range []Axis{AxisColor, AxisShape, AxisSize} {
				if IsSimilarExcept(axis, a, b) {
					count++
				}
			}
			assert.LessOrEqual(t, count, 1,
				"pair %v / %v similar along more than one axis", a, b)
		}
	}
}

func TestApplesCompareAsOneLogicalShape(t *testing.T) {
	a := facts("apple_1", []string{"m1"}, []string{"red"}, geom.Vec(0.11, 0.12, 0.11))
	b := facts("apple_2", []string{"m2"}, []string{"green"}, geom.Vec(0.11, 0.12, 0.11))

	// Different numeric suffix is not a shape difference.
	assert.False(t, IsSimilarExceptInShape(a, b))
	assert.True(t, IsSimilarExceptInColor(a, b))
}

func TestFootprintsWithin(t *testing.T) {
	a := facts("table", nil, nil, geom.Vec(1.2, 0.7, 0.8))
	// Taller but same footprint.
	b := facts("table", nil, nil, geom.Vec(1.2, 1.4, 0.8))
	c := facts("table", nil, nil, geom.Vec(1.6, 0.7, 1.1))

	assert.True(t, FootprintsWithin(a, b))
	assert.False(t, FootprintsWithin(a, c))
}

func TestFromDefinitionExtractsFacts(t *testing.T) {
	def := defs.ImmutableDefinition{
		Type:       "cup",
		Materials:  []string{"materials/ceramic/glazed_white"},
		Color:      []string{"white"},
		Dimensions: geom.Vec(0.08, 0.12, 0.08),
	}

	f := FromDefinition(def)
	assert.Equal(t, "cup", f.Type)
	assert.Equal(t, def.Materials, f.Materials)
	assert.Equal(t, def.Color, f.Colors)
	assert.Equal(t, def.Dimensions, f.Dimensions)

	inst := FromInstance("cup", def.Materials, def.Color, def.Dimensions)
	assert.Equal(t, f, inst)
}
