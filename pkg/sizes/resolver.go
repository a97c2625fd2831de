package sizes

import (
	"math"

	"github.com/spatialeval/scenegen/pkg/geom"
)

// Choice is the concrete result of applying a scale to a BaseSize. It is
// consumed immediately when building an object definition.
type Choice struct {
	Dimensions       geom.Vector3
	Mass             float64
	Offset           geom.Vector3
	PositionY        float64
	Scale            geom.Vector3
	Size             string
	Areas            []Area
	Sideways         *Sideways
	ClosedDimensions *geom.Vector3
	ClosedOffset     *geom.Vector3
}

// Classification thresholds, tested in order; first match wins. The values
// are tuned, not derived, and downstream consumers depend on the exact
// boundaries.
var classes = []struct {
	name  string
	limit float64
}{
	{"tiny", 0.25},
	{"small", 0.5},
	{"medium", 1.0},
	{"large", 1.5},
}

// Classify returns the coarse size class ("tiny".."huge") for a dimension
// vector. A vector is of class S when every axis is below S's limit, or
// when its volume is below limit cubed while every axis stays below twice
// the limit. The second branch keeps long-thin objects from being rated by
// their largest axis alone.
func Classify(d geom.Vector3) string {
	for _, c := range classes {
		if fitsClass(d, c.limit) {
			return c.name
		}
	}
	return "huge"
}

func fitsClass(d geom.Vector3, s float64) bool {
	if d.X < s && d.Y < s && d.Z < s {
		return true
	}
	return d.Volume() < s*s*s && d.X < 2*s && d.Y < 2*s && d.Z < 2*s
}

// ResolveUniform applies one scalar multiplier to every axis.
func ResolveUniform(base BaseSize, k float64) Choice {
	return Resolve(base, geom.Uniform(k))
}

// Resolve applies a per-axis scale to a BaseSize, producing the concrete
// size record. Mass scales with the average of the three multipliers
// rather than their product, so extreme scales stay usably weighted.
func Resolve(base BaseSize, scale geom.Vector3) Choice {
	dims := base.Dimensions.Mul(scale)

	choice := Choice{
		Dimensions: dims,
		Mass:       round4(base.Mass * scale.Average()),
		Offset:     base.Offset.Mul(scale),
		PositionY:  base.PositionY * scale.Y,
		Scale:      scale,
		Size:       Classify(dims),
		Areas:      scaleAreas(base.Areas, scale),
	}

	if base.Sideways != nil {
		choice.Sideways = scaleSideways(*base.Sideways, scale)
	}
	if base.ClosedDimensions != nil {
		closed := base.ClosedDimensions.Mul(scale)
		choice.ClosedDimensions = &closed
	}
	if base.ClosedOffset != nil {
		closedOffset := base.ClosedOffset.Mul(scale)
		choice.ClosedOffset = &closedOffset
	}

	return choice
}

func scaleAreas(areas []Area, scale geom.Vector3) []Area {
	if len(areas) == 0 {
		return nil
	}
	scaled := make([]Area, len(areas))
	for i, a := range areas {
		scaled[i] = Area{
			ID:         a.ID,
			Kind:       a.Kind,
			Dimensions: a.Dimensions.Mul(scale),
			Position:   a.Position.Mul(scale),
		}
	}
	return scaled
}

// scaleSideways applies the axis-swap flags to the scale vector first, so
// each multiplier lands on the axis it belongs to once the shape lies on
// its side, then scales like the primary orientation.
func scaleSideways(s Sideways, scale geom.Vector3) *Sideways {
	swapped := scale
	if s.SwapXY {
		swapped = swapped.SwapXY()
	}
	if s.SwapXZ {
		swapped = swapped.SwapXZ()
	}
	if s.SwapYZ {
		swapped = swapped.SwapYZ()
	}
	return &Sideways{
		Dimensions: s.Dimensions.Mul(swapped),
		Offset:     s.Offset.Mul(swapped),
		PositionY:  s.PositionY * swapped.Y,
		RotationY:  s.RotationY,
		SwapXY:     s.SwapXY,
		SwapXZ:     s.SwapXZ,
		SwapYZ:     s.SwapYZ,
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
