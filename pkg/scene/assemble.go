package scene

import (
	"fmt"
	"math/rand"

	"github.com/spatialeval/scenegen/pkg/dataset"
	"github.com/spatialeval/scenegen/pkg/geom"
	"github.com/spatialeval/scenegen/pkg/spec"
	"github.com/spatialeval/scenegen/pkg/validation"
)

// Placed objects keep at least this much clearance from the walls.
const wallMargin = 0.1

// Yaw is snapped to multiples of this many degrees.
const rotationStep = 45.0

// Assemble samples objects from the dataset and places them in the room
// described by the spec, returning the finished scene and a spatial
// validation report. Running out of placeable definitions is reported as
// a warning, not an error; an empty dataset is a normal outcome of
// aggressive filtering.
func Assemble(s *spec.GenerationSpec, ds *dataset.Dataset, rng *rand.Rand) (*Scene, *validation.Report) {
	state := NewState(s)
	report := validation.NewReport()

	for i := 0; i < s.Objects.Count; i++ {
		def, ok := ds.ChooseRandom(rng)
		if !ok {
			report.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     "dataset exhausted before reaching the requested object count",
				SpecPath:    "objects.count",
				ActualValue: i,
				Expected:    fmt.Sprint(s.Objects.Count),
			})
			break
		}

		position, ok := randomFloorPosition(s.Room, def.Dimensions, rng)
		if !ok {
			report.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     "definition too large for the room, skipped",
				SpecPath:    "room",
				ActualValue: def.Type,
			})
			continue
		}

		rotation := float64(rng.Intn(int(360/rotationStep))) * rotationStep
		state.AddObject(def, position, rotation)
	}

	sceneOut := state.Scene()
	report.Merge(ValidateSpatial(sceneOut))
	return sceneOut, report
}

// randomFloorPosition picks a position for an object of the given
// dimensions such that its footprint stays inside the room walls.
func randomFloorPosition(room spec.RoomDef, dims geom.Vector3, rng *rand.Rand) (geom.Vector3, bool) {
	maxX := room.HalfRoomX() - dims.X/2 - wallMargin
	maxZ := room.HalfRoomZ() - dims.Z/2 - wallMargin
	if maxX <= 0 || maxZ <= 0 {
		return geom.Vector3{}, false
	}
	return geom.Vec(
		rng.Float64()*2*maxX-maxX,
		0,
		rng.Float64()*2*maxZ-maxZ,
	), true
}
