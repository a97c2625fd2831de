// Package similarity classifies pairs of objects along exactly one axis
// of difference: color, shape, or size.
package similarity

import (
	"math"

	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/geom"
)

// Tolerance is the absolute slack, per compared value, for size matches.
const Tolerance = 0.05

// Axis names one dimension along which two objects may differ.
type Axis string

const (
	AxisColor Axis = "color"
	AxisShape Axis = "shape"
	AxisSize  Axis = "size"
)

// Facts is the normalized view of an object used for comparison,
// extractable from both raw definitions and serialized scene objects.
type Facts struct {
	Type       string
	Materials  []string
	Colors     []string
	Dimensions geom.Vector3
}

// FromDefinition extracts comparison facts from a definition snapshot.
func FromDefinition(d defs.ImmutableDefinition) Facts {
	return Facts{
		Type:       d.Type,
		Materials:  d.Materials,
		Colors:     d.Color,
		Dimensions: d.Dimensions,
	}
}

// FromInstance extracts comparison facts from a serialized scene object's
// fields.
func FromInstance(objectType string, mats, colors []string, dimensions geom.Vector3) Facts {
	return Facts{
		Type:       objectType,
		Materials:  mats,
		Colors:     colors,
		Dimensions: dimensions,
	}
}

// Shape families whose numeric suffixes are visually near-identical
// variants, collapsed to one logical type before comparison.
var typePrefixFamilies = []string{"apple", "crayon"}

// NormalizeType collapses suffixed variants of the known families to the
// family name.
func NormalizeType(objectType string) string {
	for _, family := range typePrefixFamilies {
		if len(objectType) >= len(family) && objectType[:len(family)] == family {
			return family
		}
	}
	return objectType
}

// DoMaterialsMatch compares two objects' surface appearance. Enumerated
// materials must match exactly when both sides have them; otherwise the
// colors decide, and any overlap counts because multi-material objects
// carry color lists that are supersets or subsets of each other.
func DoMaterialsMatch(materials1, materials2, colors1, colors2 []string) bool {
	if len(materials1) > 0 && len(materials2) > 0 {
		return equalStrings(materials1, materials2)
	}
	return anyOverlap(colors1, colors2)
}

// IsSimilarExceptInColor reports whether the two objects are the same
// shape at the same size but rendered differently.
func IsSimilarExceptInColor(a, b Facts) bool {
	return !identical(a, b) &&
		sameType(a, b) &&
		sizesWithin(a, b, false) &&
		!DoMaterialsMatch(a.Materials, b.Materials, a.Colors, b.Colors)
}

// IsSimilarExceptInShape reports whether the two objects look alike in
// material and size but are different shapes.
func IsSimilarExceptInShape(a, b Facts) bool {
	return !identical(a, b) &&
		!sameType(a, b) &&
		sizesWithin(a, b, false) &&
		DoMaterialsMatch(a.Materials, b.Materials, a.Colors, b.Colors)
}

// IsSimilarExceptInSize reports whether the two objects are the same
// shape and appearance at measurably different sizes.
func IsSimilarExceptInSize(a, b Facts) bool {
	return !identical(a, b) &&
		sameType(a, b) &&
		!sizesWithin(a, b, false) &&
		DoMaterialsMatch(a.Materials, b.Materials, a.Colors, b.Colors)
}

// IsSimilarExcept dispatches to the per-axis classifier.
func IsSimilarExcept(axis Axis, a, b Facts) bool {
	switch axis {
	case AxisColor:
		return IsSimilarExceptInColor(a, b)
	case AxisShape:
		return IsSimilarExceptInShape(a, b)
	case AxisSize:
		return IsSimilarExceptInSize(a, b)
	}
	return false
}

func sameType(a, b Facts) bool {
	return NormalizeType(a.Type) == NormalizeType(b.Type)
}

// sizesWithin compares per axis, or on the XZ footprint diagonal alone
// when the caller only cares about ground coverage.
func sizesWithin(a, b Facts, footprintOnly bool) bool {
	if footprintOnly {
		return within(a.Dimensions.FootprintDiagonal(), b.Dimensions.FootprintDiagonal())
	}
	return within(a.Dimensions.X, b.Dimensions.X) &&
		within(a.Dimensions.Y, b.Dimensions.Y) &&
		within(a.Dimensions.Z, b.Dimensions.Z)
}

// FootprintsWithin reports whether the two objects' XZ diagonals are
// within tolerance of each other.
func FootprintsWithin(a, b Facts) bool {
	return sizesWithin(a, b, true)
}

func within(v1, v2 float64) bool {
	return math.Abs(v1-v2) <= Tolerance
}

func identical(a, b Facts) bool {
	return sameType(a, b) &&
		sizesWithin(a, b, false) &&
		DoMaterialsMatch(a.Materials, b.Materials, a.Colors, b.Colors)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func anyOverlap(a, b []string) bool {
	for _, v := range a {
		for _, w := range b {
			if v == w {
				return true
			}
		}
	}
	return false
}
