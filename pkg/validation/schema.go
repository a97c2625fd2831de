package validation

import (
	"fmt"

	"github.com/spatialeval/scenegen/pkg/spec"
)

// Untrained axis names accepted by objects.untrained_axis.
var untrainedAxes = map[string]bool{
	"":            true,
	"category":    true,
	"color":       true,
	"combination": true,
	"shape":       true,
	"size":        true,
}

// ValidateSchema performs schema-level validation on a parsed GenerationSpec.
// It checks structural correctness before any generation work.
func ValidateSchema(s *spec.GenerationSpec) *Report {
	r := NewReport()

	validateRoom(s, r)
	validatePerformer(s, r)
	validateObjects(s, r)

	return r
}

func validateRoom(s *spec.GenerationSpec, r *Report) {
	room := s.Room
	if room.DimensionsX <= 0 || room.DimensionsZ <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "room dimensions must be greater than 0",
			SpecPath:    "room.dimensions_x/dimensions_z",
			ActualValue: []float64{room.DimensionsX, room.DimensionsZ},
			Expected:    "> 0",
		})
	}
	if room.CeilingHeight <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "room ceiling height must be greater than 0",
			SpecPath:    "room.ceiling_height",
			ActualValue: room.CeilingHeight,
			Expected:    "> 0",
		})
	}
}

func validatePerformer(s *spec.GenerationSpec, r *Report) {
	p := s.Performer
	if absf(p.PositionX) > s.Room.HalfRoomX() || absf(p.PositionZ) > s.Room.HalfRoomZ() {
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "performer start must lie inside the room",
			SpecPath:     "performer.position_x/position_z",
			ActualValue:  []float64{p.PositionX, p.PositionZ},
			Expected:     fmt.Sprintf("within ±%.1f x ±%.1f", s.Room.HalfRoomX(), s.Room.HalfRoomZ()),
			ConflictWith: "room.dimensions_x/dimensions_z",
		})
	}
	if p.RotationY < 0 || p.RotationY >= 360 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "performer rotation is normally given in [0, 360)",
			SpecPath:    "performer.rotation_y",
			ActualValue: p.RotationY,
			Expected:    "[0, 360)",
			Suggestions: []string{"Rotation values wrap, but normalized specs are easier to diff"},
		})
	}
}

func validateObjects(s *spec.GenerationSpec, r *Report) {
	o := s.Objects
	if o.Count < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "objects.count must be non-negative",
			SpecPath:    "objects.count",
			ActualValue: o.Count,
			Expected:    ">= 0",
		})
	}
	if !untrainedAxes[o.UntrainedAxis] {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown untrained axis %q", o.UntrainedAxis),
			SpecPath:    "objects.untrained_axis",
			ActualValue: o.UntrainedAxis,
			Expected:    "one of category, color, combination, shape, size (or empty)",
		})
	}
	for _, typ := range o.IncludeTypes {
		for _, excluded := range o.ExcludeTypes {
			if typ == excluded {
				r.AddError(Result{
					Level:        LevelSchema,
					Message:      fmt.Sprintf("type %q is both included and excluded", typ),
					SpecPath:     "objects.include_types",
					ActualValue:  typ,
					ConflictWith: "objects.exclude_types",
				})
			}
		}
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
