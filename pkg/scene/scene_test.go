package scene_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialeval/scenegen/pkg/defs"
	"github.com/spatialeval/scenegen/pkg/geom"
	"github.com/spatialeval/scenegen/pkg/scene"
	"github.com/spatialeval/scenegen/pkg/spec"
)

func defaultSpec() *spec.GenerationSpec {
	return &spec.GenerationSpec{
		SpecVersion: "0.1.0",
		Name:        "test_scene",
		Room: spec.RoomDef{
			DimensionsX:   10,
			DimensionsZ:   10,
			CeilingHeight: 3,
			WallMaterial:  "materials/walls/drywall",
			FloorMaterial: "materials/floors/fake_carpet",
		},
		Performer: spec.PerformerDef{PositionX: 0, PositionZ: -4, RotationY: 0},
		Objects:   spec.ObjectsDef{Count: 3},
	}
}

func concreteBall() defs.ImmutableDefinition {
	return defs.ImmutableDefinition{
		Type:             "ball",
		Shape:            []string{"ball"},
		Color:            []string{"red"},
		Materials:        []string{"materials/rubber/smooth_red"},
		SalientMaterials: []string{"rubber"},
		Mass:             0.5,
		MassMultiplier:   1.5,
		Dimensions:       geom.Vec(0.2, 0.2, 0.2),
		PositionY:        0.1,
		Scale:            geom.Uniform(2),
		Size:             "tiny",
		Attributes:       defs.Attributes{Moveable: true, Pickupable: true},
	}
}

func TestNewStateFromSpec(t *testing.T) {
	st := scene.NewState(defaultSpec())
	sc := st.Scene()

	assert.Equal(t, "test_scene", sc.Name)
	assert.Equal(t, geom.Vec(10, 3, 10), sc.Room.Dimensions)
	assert.Equal(t, geom.Vec(0, 0, -4), sc.PerformerStart.Position)
	assert.NotEmpty(t, sc.GeneratedAt)
	assert.Empty(t, sc.Objects)
}

func TestAddObject(t *testing.T) {
	st := scene.NewState(defaultSpec())

	obj := st.AddObject(concreteBall(), geom.Vec(1, 0, 2), 90)

	assert.NotEmpty(t, obj.ID)
	assert.Equal(t, "ball", obj.Type)
	// Mass multiplier applies at placement: 0.5 x 1.5.
	assert.InDelta(t, 0.75, obj.Mass, 1e-9)
	assert.True(t, obj.Pickupable)

	require.Len(t, obj.Shows, 1)
	show := obj.Shows[0]
	assert.Equal(t, geom.Vec(1, 0.1, 2), show.Position, "object rests at its resolved height")
	assert.Equal(t, geom.Vec(0, 90, 0), show.Rotation)
	assert.Equal(t, geom.Uniform(2), show.Scale)

	require.NotNil(t, obj.Debug)
	assert.Equal(t, "tiny", obj.Debug.Size)
	assert.Equal(t, []string{"red"}, obj.Debug.Color)
}

func TestAddObjectMintsDistinctIDs(t *testing.T) {
	st := scene.NewState(defaultSpec())

	a := st.AddObject(concreteBall(), geom.Vec(0, 0, 0), 0)
	b := st.AddObject(concreteBall(), geom.Vec(1, 0, 1), 0)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestGoalAndActionGroups(t *testing.T) {
	st := scene.NewState(defaultSpec())
	st.SetGoal("retrieval", "Find and pick up the ball.")
	st.AddActionGroup(
		scene.Action{Action: "MoveAhead"},
		scene.Action{Action: "PickupObject", Params: map[string]any{"objectId": "target"}},
	)
	st.AddActionGroup(scene.Action{Action: "Pass"})

	goal := st.Scene().Goal
	require.NotNil(t, goal)
	assert.Equal(t, "retrieval", goal.Category)
	require.Len(t, goal.ActionList, 2)
	assert.Len(t, goal.ActionList[0], 2)
	assert.Equal(t, "Pass", goal.ActionList[1][0].Action)
}

func TestMarshalIndentRoundTrips(t *testing.T) {
	st := scene.NewState(defaultSpec())
	st.AddObject(concreteBall(), geom.Vec(1, 0, 2), 45)

	data, err := st.MarshalIndent()
	require.NoError(t, err)

	var decoded scene.Scene
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "test_scene", decoded.Name)
	require.Len(t, decoded.Objects, 1)
	assert.Equal(t, "ball", decoded.Objects[0].Type)
	require.Len(t, decoded.Objects[0].Shows, 1)
}
