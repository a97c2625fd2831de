package scene

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/geom"
	"github.com/spatialeval/scenegen/pkg/spec"
)

// Show is one timed appearance of an object in the scene.
type Show struct {
	StepBegin int          `json:"step_begin"`
	Position  geom.Vector3 `json:"position"`
	Rotation  geom.Vector3 `json:"rotation"`
	Scale     geom.Vector3 `json:"scale"`
}

// ObjectDebug carries the generator-side facts about a placed object that
// the engine does not need but evaluation tooling does.
type ObjectDebug struct {
	Color                []string     `json:"color,omitempty"`
	Shape                []string     `json:"shape,omitempty"`
	Size                 string       `json:"size,omitempty"`
	Dimensions           geom.Vector3 `json:"dimensions"`
	Offset               geom.Vector3 `json:"offset"`
	UntrainedCategory    bool         `json:"untrained_category,omitempty"`
	UntrainedColor       bool         `json:"untrained_color,omitempty"`
	UntrainedCombination bool         `json:"untrained_combination,omitempty"`
	UntrainedShape       bool         `json:"untrained_shape,omitempty"`
	UntrainedSize        bool         `json:"untrained_size,omitempty"`
}

// Object is one placed object record in the serialized scene.
type Object struct {
	ID               string       `json:"id"`
	Type             string       `json:"type"`
	Mass             float64      `json:"mass"`
	Materials        []string     `json:"materials,omitempty"`
	SalientMaterials []string     `json:"salient_materials,omitempty"`
	Moveable         bool         `json:"moveable,omitempty"`
	Pickupable       bool         `json:"pickupable,omitempty"`
	Receptacle       bool         `json:"receptacle,omitempty"`
	Openable         bool         `json:"openable,omitempty"`
	Stackable        bool         `json:"stackable,omitempty"`
	Structure        bool         `json:"structure,omitempty"`
	Shows            []Show       `json:"shows"`
	Debug            *ObjectDebug `json:"debug,omitempty"`
}

// Room describes the rectangular room in the serialized scene.
type Room struct {
	Dimensions      geom.Vector3 `json:"dimensions"`
	WallMaterial    string       `json:"wall_material,omitempty"`
	FloorMaterial   string       `json:"floor_material,omitempty"`
	CeilingMaterial string       `json:"ceiling_material,omitempty"`
}

// PerformerStart is the performer agent's starting pose.
type PerformerStart struct {
	Position geom.Vector3 `json:"position"`
	Rotation geom.Vector3 `json:"rotation"`
}

// Action is one scripted step in the goal's action list.
type Action struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params,omitempty"`
}

// Goal describes what the performer is asked to do, with an optional
// scripted action sequence grouped into alternatives.
type Goal struct {
	Category    string         `json:"category,omitempty"`
	Description string         `json:"description,omitempty"`
	ActionList  [][]Action     `json:"action_list,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Scene is the complete serialized scene description consumed by the
// physics/rendering engine.
type Scene struct {
	Name           string         `json:"name"`
	Version        string         `json:"version"`
	GeneratedAt    string         `json:"generated_at"`
	Room           Room           `json:"room"`
	PerformerStart PerformerStart `json:"performer_start"`
	Objects        []Object       `json:"objects"`
	Goal           *Goal          `json:"goal,omitempty"`
}

// State is the mutable scene being assembled. Scenario builders mutate it
// incrementally through the methods below and serialize it once at the end.
type State struct {
	scene Scene
}

// NewState starts a scene from a generation spec's room and performer
// settings.
func NewState(s *spec.GenerationSpec) *State {
	return &State{
		scene: Scene{
			Name:        s.Name,
			Version:     s.SpecVersion,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Room: Room{
				Dimensions:      geom.Vec(s.Room.DimensionsX, s.Room.CeilingHeight, s.Room.DimensionsZ),
				WallMaterial:    s.Room.WallMaterial,
				FloorMaterial:   s.Room.FloorMaterial,
				CeilingMaterial: s.Room.CeilingMaterial,
			},
			PerformerStart: PerformerStart{
				Position: geom.Vec(s.Performer.PositionX, 0, s.Performer.PositionZ),
				Rotation: geom.Vec(0, s.Performer.RotationY, 0),
			},
			Objects: []Object{},
		},
	}
}

// AddObject places a concrete definition in the scene at the given floor
// position and yaw, minting a fresh instance id. The definition's resting
// height and mass multiplier are applied here.
func (st *State) AddObject(def defs.ImmutableDefinition, position geom.Vector3, rotationY float64) *Object {
	mass := def.Mass
	if def.MassMultiplier != 0 {
		mass = math.Round(mass*def.MassMultiplier*10000) / 10000
	}

	scale := def.Scale
	if scale.IsZero() {
		scale = geom.Uniform(1)
	}

	obj := Object{
		ID:               uuid.New().String(),
		Type:             def.Type,
		Mass:             mass,
		Materials:        def.Materials,
		SalientMaterials: def.SalientMaterials,
		Moveable:         def.Attributes.Moveable,
		Pickupable:       def.Attributes.Pickupable,
		Receptacle:       def.Attributes.Receptacle,
		Openable:         def.Attributes.Openable,
		Stackable:        def.Attributes.Stackable,
		Structure:        def.Attributes.Structure,
		Shows: []Show{{
			StepBegin: 0,
			Position:  geom.Vec(position.X, def.PositionY, position.Z),
			Rotation:  geom.Vec(0, rotationY, 0),
			Scale:     scale,
		}},
		Debug: &ObjectDebug{
			Color:                def.Color,
			Shape:                def.Shape,
			Size:                 def.Size,
			Dimensions:           def.Dimensions,
			Offset:               def.Offset,
			UntrainedCategory:    def.UntrainedCategory,
			UntrainedColor:       def.UntrainedColor,
			UntrainedCombination: def.UntrainedCombination,
			UntrainedShape:       def.UntrainedShape,
			UntrainedSize:        def.UntrainedSize,
		},
	}

	st.scene.Objects = append(st.scene.Objects, obj)
	return &st.scene.Objects[len(st.scene.Objects)-1]
}

// SetGoal replaces the scene's goal category and description.
func (st *State) SetGoal(category, description string) {
	if st.scene.Goal == nil {
		st.scene.Goal = &Goal{}
	}
	st.scene.Goal.Category = category
	st.scene.Goal.Description = description
}

// AddActionGroup appends one alternative action sequence to the goal's
// action list.
func (st *State) AddActionGroup(actions ...Action) {
	if st.scene.Goal == nil {
		st.scene.Goal = &Goal{}
	}
	st.scene.Goal.ActionList = append(st.scene.Goal.ActionList, actions)
}

// Scene returns the scene being assembled.
func (st *State) Scene() *Scene {
	return &st.scene
}

// MarshalIndent serializes the assembled scene with indentation, the
// format the external engine reads.
func (st *State) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(&st.scene, "", "  ")
}
