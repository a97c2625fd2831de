package defs

import (
	"fmt"
	"strings"

	"github.com/spatialeval/scenegen/pkg/geom"
	"github.com/spatialeval/scenegen/pkg/sizes"
)

// ImmutableDefinition is the snapshot of a concrete definition stored
// inside datasets, so expansion results can be cached and shared safely.
// The field list is fixed and mirrors Definition minus the choose-lists;
// treat every slice as read-only.
type ImmutableDefinition struct {
	Type             string       `json:"type"`
	Shape            []string     `json:"shape,omitempty"`
	Color            []string     `json:"color,omitempty"`
	Materials        []string     `json:"materials,omitempty"`
	SalientMaterials []string     `json:"salient_materials,omitempty"`
	MaterialCategory []string     `json:"material_category,omitempty"`
	Mass             float64      `json:"mass"`
	MassMultiplier   float64      `json:"mass_multiplier,omitempty"`
	Dimensions       geom.Vector3 `json:"dimensions"`
	Offset           geom.Vector3 `json:"offset"`
	PositionY        float64      `json:"position_y"`
	Scale            geom.Vector3 `json:"scale"`
	Size             string       `json:"size"`

	Areas            []sizes.Area    `json:"areas,omitempty"`
	Sideways         *sizes.Sideways `json:"sideways,omitempty"`
	ClosedDimensions *geom.Vector3   `json:"closed_dimensions,omitempty"`
	ClosedOffset     *geom.Vector3   `json:"closed_offset,omitempty"`

	Attributes Attributes `json:"attributes"`

	UntrainedCategory    bool `json:"untrained_category,omitempty"`
	UntrainedColor       bool `json:"untrained_color,omitempty"`
	UntrainedCombination bool `json:"untrained_combination,omitempty"`
	UntrainedShape       bool `json:"untrained_shape,omitempty"`
	UntrainedSize        bool `json:"untrained_size,omitempty"`
}

// FromDefinition snapshots a concrete definition. It returns an error if
// any choose-list still has entries; snapshotting an unresolved template
// is always a caller bug.
func FromDefinition(d Definition) (ImmutableDefinition, error) {
	if !d.IsConcrete() {
		return ImmutableDefinition{}, fmt.Errorf(
			"definition %q still has unresolved choices (%d type, %d material, %d size)",
			d.Type, len(d.ChooseTypeList), len(d.ChooseMaterialList), len(d.ChooseSizeList))
	}
	return ImmutableDefinition{
		Type:             d.Type,
		Shape:            d.Shape,
		Color:            d.Color,
		Materials:        d.Materials,
		SalientMaterials: d.SalientMaterials,
		MaterialCategory: d.MaterialCategory,
		Mass:             d.Mass,
		MassMultiplier:   d.MassMultiplier,
		Dimensions:       d.Dimensions,
		Offset:           d.Offset,
		PositionY:        d.PositionY,
		Scale:            d.Scale,
		Size:             d.Size,
		Areas:            d.Areas,
		Sideways:         d.Sideways,
		ClosedDimensions: d.ClosedDimensions,
		ClosedOffset:     d.ClosedOffset,
		Attributes:       d.Attributes,

		UntrainedCategory:    d.UntrainedCategory,
		UntrainedColor:       d.UntrainedColor,
		UntrainedCombination: d.UntrainedCombination,
		UntrainedShape:       d.UntrainedShape,
		UntrainedSize:        d.UntrainedSize,
	}, nil
}

// IsTrained reports whether every untrained flag is false.
func (d ImmutableDefinition) IsTrained() bool {
	return !d.UntrainedCategory && !d.UntrainedColor &&
		!d.UntrainedCombination && !d.UntrainedShape && !d.UntrainedSize
}

// Key returns a stable identity string used to deduplicate expansion
// results.
func (d ImmutableDefinition) Key() string {
	return fmt.Sprintf("%s|%s|%.4f,%.4f,%.4f|%s|%s",
		d.Type,
		d.Size,
		d.Dimensions.X, d.Dimensions.Y, d.Dimensions.Z,
		strings.Join(d.Materials, ","),
		strings.Join(d.Color, ","))
}
