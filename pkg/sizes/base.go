package sizes

import "github.com/spatialeval/scenegen/pkg/geom"

// AreaKind distinguishes the two kinds of interactable sub-regions.
type AreaKind string

const (
	AreaOpen     AreaKind = "open"
	AreaEnclosed AreaKind = "enclosed"
)

// Area is an interactable sub-region of a shape (a shelf surface, the
// inside of a box) with its own dimensions and position relative to the
// shape's origin.
type Area struct {
	ID         string       `json:"id"`
	Kind       AreaKind     `json:"kind"`
	Dimensions geom.Vector3 `json:"dimensions"`
	Position   geom.Vector3 `json:"position"`
}

// Sideways holds the alternate orientation data some shapes declare for
// lying on their side. The swap flags say which nominal axis each scale
// multiplier applies to once the shape is rotated.
type Sideways struct {
	Dimensions geom.Vector3 `json:"dimensions"`
	Offset     geom.Vector3 `json:"offset"`
	PositionY  float64      `json:"position_y"`
	RotationY  float64      `json:"rotation_y"`
	SwapXY     bool         `json:"swap_xy,omitempty"`
	SwapXZ     bool         `json:"swap_xz,omitempty"`
	SwapYZ     bool         `json:"swap_yz,omitempty"`
}

// BaseSize is the literal, load-time nominal size data for one physical
// shape. Instances are defined once as static data and never mutated.
type BaseSize struct {
	Dimensions       geom.Vector3
	Mass             float64
	Offset           geom.Vector3
	PositionY        float64
	Areas            []Area
	Sideways         *Sideways
	ClosedDimensions *geom.Vector3
	ClosedOffset     *geom.Vector3
}
