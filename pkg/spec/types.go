package spec

// GenerationSpec is the top-level specification for one generated scene.
type GenerationSpec struct {
	SpecVersion string       `yaml:"spec_version" json:"spec_version"`
	Name        string       `yaml:"name" json:"name"`
	Room        RoomDef      `yaml:"room" json:"room"`
	Performer   PerformerDef `yaml:"performer" json:"performer"`
	Objects     ObjectsDef   `yaml:"objects" json:"objects"`
	Seed        int64        `yaml:"seed" json:"seed"`
	Unshuffled  bool         `yaml:"unshuffled" json:"unshuffled"`
}

// RoomDef describes the rectangular room the scene takes place in.
type RoomDef struct {
	DimensionsX     float64 `yaml:"dimensions_x" json:"dimensions_x"`
	DimensionsZ     float64 `yaml:"dimensions_z" json:"dimensions_z"`
	CeilingHeight   float64 `yaml:"ceiling_height" json:"ceiling_height"`
	WallMaterial    string  `yaml:"wall_material" json:"wall_material"`
	FloorMaterial   string  `yaml:"floor_material" json:"floor_material"`
	CeilingMaterial string  `yaml:"ceiling_material" json:"ceiling_material"`
}

// PerformerDef describes the performer agent's starting pose.
type PerformerDef struct {
	PositionX float64 `yaml:"position_x" json:"position_x"`
	PositionZ float64 `yaml:"position_z" json:"position_z"`
	RotationY float64 `yaml:"rotation_y" json:"rotation_y"`
}

// ObjectsDef controls how many objects are sampled and from where.
type ObjectsDef struct {
	Count         int      `yaml:"count" json:"count"`
	Dataset       string   `yaml:"dataset" json:"dataset"`
	UntrainedAxis string   `yaml:"untrained_axis" json:"untrained_axis"`
	IncludeTypes  []string `yaml:"include_types" json:"include_types"`
	ExcludeTypes  []string `yaml:"exclude_types" json:"exclude_types"`
}

// HalfRoomX returns half the room extent along X.
func (r RoomDef) HalfRoomX() float64 { return r.DimensionsX / 2 }

// HalfRoomZ returns half the room extent along Z.
func (r RoomDef) HalfRoomZ() float64 { return r.DimensionsZ / 2 }
