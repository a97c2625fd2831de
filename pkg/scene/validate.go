package scene

import (
	"fmt"

	"github.com/spatialeval/scenegen/pkg/geom"
	"github.com/spatialeval/scenegen/pkg/validation"
)

// ValidateSpatial performs structural validation on a serialized scene:
// object record integrity, performer placement, and room-bounds enclosure.
func ValidateSpatial(sc *Scene) *validation.Report {
	r := validation.NewReport()

	if sc == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene is nil",
		})
		return r
	}

	roomBounds := geom.Bounds{
		Min: geom.Vec(-sc.Room.Dimensions.X/2, 0, -sc.Room.Dimensions.Z/2),
		Max: geom.Vec(sc.Room.Dimensions.X/2, sc.Room.Dimensions.Y, sc.Room.Dimensions.Z/2),
	}

	validateObjectIDs(sc, r)
	validatePerformer(sc, roomBounds, r)
	validateEnclosure(sc, roomBounds, r)

	return r
}

func validateObjectIDs(sc *Scene, r *validation.Report) {
	seen := make(map[string]int, len(sc.Objects))
	for i, obj := range sc.Objects {
		if obj.ID == "" {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("object at index %d has empty ID", i),
				SpecPath: fmt.Sprintf("objects[%d].id", i),
				Expected: "non-empty string",
			})
			continue
		}
		if prev, exists := seen[obj.ID]; exists {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("duplicate object ID at indices %d and %d", prev, i),
				SpecPath: fmt.Sprintf("objects[%d].id", i),
				ObjectID: obj.ID,
			})
		}
		seen[obj.ID] = i

		if len(obj.Shows) == 0 {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  "object has no shows",
				SpecPath: fmt.Sprintf("objects[%d].shows", i),
				ObjectID: obj.ID,
				Expected: "at least one show",
			})
		}
	}
}

func validatePerformer(sc *Scene, roomBounds geom.Bounds, r *validation.Report) {
	p := sc.PerformerStart.Position
	if p.X < roomBounds.Min.X || p.X > roomBounds.Max.X ||
		p.Z < roomBounds.Min.Z || p.Z > roomBounds.Max.Z {
		r.AddError(validation.Result{
			Level:        validation.LevelSpatial,
			Message:      "performer start lies outside the room",
			SpecPath:     "performer_start.position",
			ActualValue:  p,
			ConflictWith: "room.dimensions",
		})
	}
}

func validateEnclosure(sc *Scene, roomBounds geom.Bounds, r *validation.Report) {
	for i, obj := range sc.Objects {
		if obj.Debug == nil || len(obj.Shows) == 0 {
			continue
		}
		bounds := geom.BoundsAround(obj.Shows[0].Position, obj.Debug.Dimensions)
		if !roomBounds.Contains(bounds) {
			r.AddError(validation.Result{
				Level:        validation.LevelSpatial,
				Message:      "object extends outside the room",
				SpecPath:     fmt.Sprintf("objects[%d]", i),
				ObjectID:     obj.ID,
				ActualValue:  bounds,
				ConflictWith: "room.dimensions",
			})
		}
	}
}
