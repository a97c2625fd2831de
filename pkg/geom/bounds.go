package geom

// Bounds defines an axis-aligned bounding box.
type Bounds struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// BoundsAround returns the axis-aligned box for an object of the given
// dimensions centered at position on all three axes.
func BoundsAround(position, dimensions Vector3) Bounds {
	half := dimensions.Scale(0.5)
	return Bounds{
		Min: Vector3{position.X - half.X, position.Y - half.Y, position.Z - half.Z},
		Max: Vector3{position.X + half.X, position.Y + half.Y, position.Z + half.Z},
	}
}

// Contains returns true if inner lies entirely within b.
func (b Bounds) Contains(inner Bounds) bool {
	return inner.Min.X >= b.Min.X && inner.Max.X <= b.Max.X &&
		inner.Min.Y >= b.Min.Y && inner.Max.Y <= b.Max.Y &&
		inner.Min.Z >= b.Min.Z && inner.Max.Z <= b.Max.Z
}

// Extend grows b to include the other bounds.
func (b Bounds) Extend(other Bounds) Bounds {
	return Bounds{
		Min: Vector3{
			minf(b.Min.X, other.Min.X),
			minf(b.Min.Y, other.Min.Y),
			minf(b.Min.Z, other.Min.Z),
		},
		Max: Vector3{
			maxf(b.Max.X, other.Max.X),
			maxf(b.Max.Y, other.Max.Y),
			maxf(b.Max.Z, other.Max.Z),
		},
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
