package defs

import (
	"github.com/jinzhu/copier"

	"github.com/spatialeval/scenegen/pkg/geom"
	"github.com/spatialeval/scenegen/pkg/sizes"
)

// Attributes are the interaction capabilities of an object.
type Attributes struct {
	Moveable   bool `json:"moveable,omitempty"`
	Pickupable bool `json:"pickupable,omitempty"`
	Receptacle bool `json:"receptacle,omitempty"`
	Openable   bool `json:"openable,omitempty"`
	Stackable  bool `json:"stackable,omitempty"`
	Structure  bool `json:"structure,omitempty"`
}

// Definition is an object template. It may still contain unresolved
// choices in its three parallel choose-lists; it is concrete only once
// all three lists are empty.
type Definition struct {
	Type             string
	Shape            []string
	Color            []string
	Materials        []string
	SalientMaterials []string
	MaterialCategory []string

	Mass           float64
	MassMultiplier float64
	Dimensions     geom.Vector3
	Offset         geom.Vector3
	PositionY      float64
	Scale          geom.Vector3
	Size           string

	Areas            []sizes.Area
	Sideways         *sizes.Sideways
	ClosedDimensions *geom.Vector3
	ClosedOffset     *geom.Vector3

	Attributes Attributes

	UntrainedCategory    bool
	UntrainedColor       bool
	UntrainedCombination bool
	UntrainedShape       bool
	UntrainedSize        bool

	ChooseTypeList     []TypeOption
	ChooseMaterialList []MaterialOption
	ChooseSizeList     []sizes.Choice
}

// New normalizes a freshly built definition: any choose-list holding
// exactly one entry is collapsed into the definition's own fields right
// away, so no single-choice slot ever dangles. Collapsing a type option
// can inject new single-entry lists, so the pass repeats until stable.
func New(d Definition) Definition {
	for {
		collapsed := false
		if len(d.ChooseTypeList) == 1 {
			AssignChosenType(&d, d.ChooseTypeList[0])
			collapsed = true
		}
		if len(d.ChooseMaterialList) == 1 {
			AssignChosenMaterial(&d, d.ChooseMaterialList[0])
			collapsed = true
		}
		if len(d.ChooseSizeList) == 1 {
			AssignChosenSize(&d, d.ChooseSizeList[0])
			collapsed = true
		}
		if !collapsed {
			return d
		}
	}
}

// IsConcrete returns true when every choose-list is empty.
func (d *Definition) IsConcrete() bool {
	return len(d.ChooseTypeList) == 0 &&
		len(d.ChooseMaterialList) == 0 &&
		len(d.ChooseSizeList) == 0
}

// Clone returns a deep copy, so flattening one branch never disturbs the
// siblings still waiting in the choose-lists.
func (d *Definition) Clone() Definition {
	var out Definition
	// Copying a well-formed definition into a zero value cannot fail.
	_ = copier.CopyWithOption(&out, d, copier.Option{DeepCopy: true})
	return out
}
