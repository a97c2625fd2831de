package defs

import "github.com/spatialeval/scenegen/pkg/sizes"

// TypeOption is one entry of a choose-type list: a sub-type that carries
// its own overrides and, possibly, its own material and size choices.
type TypeOption struct {
	Type             string
	Shape            []string
	Color            []string
	Materials        []string
	SalientMaterials []string
	MaterialCategory []string

	Mass           float64
	MassMultiplier float64

	Attributes *Attributes

	UntrainedShape bool

	ChooseMaterialList []MaterialOption
	ChooseSizeList     []sizes.Choice
}

// MaterialOption is one entry of a choose-material list: "draw the
// rendered material from these category slots", with the salient tags and
// mass contribution that choice implies.
type MaterialOption struct {
	Categories     []string
	Salient        []string
	MassMultiplier float64
}

// AssignChosenType flattens one chosen type option into the parent
// definition. Every property present on the option overwrites the
// parent's; choice lists the option carries replace the parent's lists
// outright, which is what lets a sub-type introduce choices that are
// expanded afterward. Presence is tested by length, not nil-ness,
// because options read off a cloned definition carry empty slices where
// the original had nil, and an empty list must never wipe the parent's
// pending choices.
func AssignChosenType(d *Definition, t TypeOption) {
	if t.Type != "" {
		d.Type = t.Type
	}
	if len(t.Shape) > 0 {
		d.Shape = t.Shape
	}
	if len(t.Color) > 0 {
		d.Color = t.Color
	}
	if len(t.Materials) > 0 {
		d.Materials = t.Materials
	}
	if len(t.SalientMaterials) > 0 {
		d.SalientMaterials = t.SalientMaterials
	}
	if len(t.MaterialCategory) > 0 {
		d.MaterialCategory = t.MaterialCategory
	}
	if t.Mass != 0 {
		d.Mass = t.Mass
	}
	mergeMassMultiplier(d, t.MassMultiplier)
	if t.Attributes != nil {
		d.Attributes = *t.Attributes
	}
	if t.UntrainedShape {
		d.UntrainedShape = true
	}

	d.ChooseTypeList = nil
	if len(t.ChooseMaterialList) > 0 {
		d.ChooseMaterialList = t.ChooseMaterialList
	}
	if len(t.ChooseSizeList) > 0 {
		d.ChooseSizeList = t.ChooseSizeList
	}
}

// AssignChosenMaterial flattens one chosen material option into the
// parent definition.
func AssignChosenMaterial(d *Definition, m MaterialOption) {
	if len(m.Categories) > 0 {
		d.MaterialCategory = m.Categories
	}
	if len(m.Salient) > 0 {
		d.SalientMaterials = m.Salient
	}
	mergeMassMultiplier(d, m.MassMultiplier)
	d.ChooseMaterialList = nil
}

// AssignChosenSize flattens one chosen size option into the parent
// definition.
func AssignChosenSize(d *Definition, s sizes.Choice) {
	if !s.Dimensions.IsZero() {
		d.Dimensions = s.Dimensions
	}
	if s.Mass != 0 {
		d.Mass = s.Mass
	}
	if !s.Offset.IsZero() {
		d.Offset = s.Offset
	}
	if s.PositionY != 0 {
		d.PositionY = s.PositionY
	}
	if !s.Scale.IsZero() {
		d.Scale = s.Scale
	}
	if s.Size != "" {
		d.Size = s.Size
	}
	if len(s.Areas) > 0 {
		d.Areas = s.Areas
	}
	if s.Sideways != nil {
		d.Sideways = s.Sideways
	}
	if s.ClosedDimensions != nil {
		d.ClosedDimensions = s.ClosedDimensions
	}
	if s.ClosedOffset != nil {
		d.ClosedOffset = s.ClosedOffset
	}
	d.ChooseSizeList = nil
}

// Mass multipliers compose multiplicatively: a heavy block material on a
// dense base object compounds rather than replaces. Every other field
// follows plain overwrite.
func mergeMassMultiplier(d *Definition, multiplier float64) {
	if multiplier == 0 {
		return
	}
	if d.MassMultiplier != 0 {
		d.MassMultiplier *= multiplier
	} else {
		d.MassMultiplier = multiplier
	}
}
