package defs

import (
	"sync"

	"github.com/spatialeval/scenegen/pkg/geom"
	"github.com/spatialeval/scenegen/pkg/materials"
	"github.com/spatialeval/scenegen/pkg/sizes"
)

// NewMaterialOption builds the material option for the given category
// slots. Salient tags are the distinct categories; the mass contribution
// is the product of each distinct category's multiplier.
func NewMaterialOption(slots ...string) MaterialOption {
	var distinct []string
	seen := map[string]bool{}
	multiplier := 1.0
	for _, c := range slots {
		if !seen[c] {
			seen[c] = true
			distinct = append(distinct, c)
			multiplier *= materials.MassMultiplier(c)
		}
	}
	return MaterialOption{Categories: slots, Salient: distinct, MassMultiplier: multiplier}
}

// standardFactory builds the common factory shape: size choices from the
// multipliers, material choices from the caller or the shape's defaults.
func standardFactory(base sizes.BaseSize, attrs Attributes, shape []string, defaults []MaterialOption) Factory {
	return func(chosen []MaterialOption, multipliers []float64, typeName string) Definition {
		if chosen == nil {
			chosen = defaults
		}
		if len(multipliers) == 0 {
			multipliers = []float64{1}
		}
		sizeList := make([]sizes.Choice, len(multipliers))
		for i, k := range multipliers {
			sizeList[i] = sizes.ResolveUniform(base, k)
		}
		return Definition{
			Type:               typeName,
			Shape:              shape,
			Attributes:         attrs,
			ChooseMaterialList: chosen,
			ChooseSizeList:     sizeList,
		}
	}
}

// literalFactory is for shapes whose rendered material and color are
// fixed (fruit, crayons); they accept no material categories.
func literalFactory(base sizes.BaseSize, attrs Attributes, shape, mats, colors, salient []string) Factory {
	return func(_ []MaterialOption, multipliers []float64, typeName string) Definition {
		if len(multipliers) == 0 {
			multipliers = []float64{1}
		}
		sizeList := make([]sizes.Choice, len(multipliers))
		for i, k := range multipliers {
			sizeList[i] = sizes.ResolveUniform(base, k)
		}
		return Definition{
			Type:             typeName,
			Shape:            shape,
			Attributes:       attrs,
			Materials:        mats,
			Color:            colors,
			SalientMaterials: salient,
			ChooseSizeList:   sizeList,
		}
	}
}

var (
	pickupable = Attributes{Moveable: true, Pickupable: true}
	stackable  = Attributes{Moveable: true, Pickupable: true, Stackable: true}
	furniture  = Attributes{Moveable: true, Receptacle: true}
	container  = Attributes{Moveable: true, Pickupable: true, Receptacle: true, Openable: true}
)

// Nominal size tables. Dimensions in meters, mass in kilograms.
var (
	ballBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.1, 0.1, 0.1),
		Mass:       0.5,
		PositionY:  0.05,
	}

	blockBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.1, 0.1, 0.1),
		Mass:       0.33,
		PositionY:  0.05,
	}

	boxBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.45, 0.25, 0.45),
		Mass:       1,
		PositionY:  0.125,
		Areas: []sizes.Area{{
			ID:         "inside_0",
			Kind:       sizes.AreaEnclosed,
			Dimensions: geom.Vec(0.4, 0.2, 0.4),
			Position:   geom.Vec(0, 0.1, 0),
		}},
		ClosedDimensions: &geom.Vector3{X: 0.45, Y: 0.2, Z: 0.45},
	}

	bowlBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.17, 0.07, 0.17),
		Mass:       0.3,
		PositionY:  0.035,
		Areas: []sizes.Area{{
			ID:         "inside_0",
			Kind:       sizes.AreaOpen,
			Dimensions: geom.Vec(0.14, 0.05, 0.14),
			Position:   geom.Vec(0, 0.02, 0),
		}},
	}

	cupBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.08, 0.12, 0.08),
		Mass:       0.25,
		PositionY:  0.06,
	}

	plateBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.21, 0.02, 0.21),
		Mass:       0.3,
		PositionY:  0.01,
	}

	sofaBase = sizes.BaseSize{
		Dimensions: geom.Vec(2.2, 1.0, 0.94),
		Mass:       45,
		PositionY:  0.5,
	}

	tableBase = sizes.BaseSize{
		Dimensions: geom.Vec(1.2, 0.74, 0.8),
		Mass:       10,
		PositionY:  0.37,
		Areas: []sizes.Area{{
			ID:         "top_0",
			Kind:       sizes.AreaOpen,
			Dimensions: geom.Vec(1.2, 0.4, 0.8),
			Position:   geom.Vec(0, 0.94, 0),
		}},
	}

	shelfBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.8, 1.0, 0.4),
		Mass:       12,
		PositionY:  0.5,
		Areas: []sizes.Area{
			{
				ID:         "shelf_0",
				Kind:       sizes.AreaOpen,
				Dimensions: geom.Vec(0.76, 0.45, 0.36),
				Position:   geom.Vec(0, 0.25, 0),
			},
			{
				ID:         "shelf_1",
				Kind:       sizes.AreaOpen,
				Dimensions: geom.Vec(0.76, 0.45, 0.36),
				Position:   geom.Vec(0, 0.75, 0),
			},
		},
	}

	// The barrel lies on its side, so the Y multiplier applies to its
	// Z extent once rotated.
	barrelBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.6, 0.8, 0.6),
		Mass:       8,
		PositionY:  0.4,
		Sideways: &sizes.Sideways{
			Dimensions: geom.Vec(0.6, 0.6, 0.8),
			PositionY:  0.3,
			RotationY:  90,
			SwapYZ:     true,
		},
	}

	appleBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.11, 0.12, 0.11),
		Mass:       0.5,
		PositionY:  0.06,
	}

	crayonBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.01, 0.09, 0.01),
		Mass:       0.01,
		PositionY:  0.045,
	}

	duckBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.21, 0.16, 0.13),
		Mass:       0.4,
		PositionY:  0.08,
	}

	trophyBase = sizes.BaseSize{
		Dimensions: geom.Vec(0.19, 0.3, 0.14),
		Mass:       0.6,
		PositionY:  0.15,
	}
)

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry holding the built-in
// shape catalog. The registry itself is immutable after construction;
// callers needing extra shapes should build their own with NewRegistry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = buildCatalog()
	})
	return defaultRegistry
}

func buildCatalog() *Registry {
	r := NewRegistry()

	r.Register("ball",
		standardFactory(ballBase, pickupable, []string{"ball"}, []MaterialOption{
			NewMaterialOption("rubber"),
			NewMaterialOption("plastic"),
			NewMaterialOption("wood"),
		}),
		[]string{"rubber", "plastic", "wood"})

	// Blocks have two independently colorable faces of one category, so
	// the category appears twice in the slot list.
	r.Register("block_a",
		standardFactory(blockBase, stackable, []string{"blank block", "cube"}, []MaterialOption{
			NewMaterialOption("wood", "wood"),
		}),
		[]string{"wood"})
	r.Register("block_b",
		standardFactory(blockBase, stackable, []string{"letter block", "cube"}, []MaterialOption{
			NewMaterialOption("block_letter", "block_letter"),
		}),
		[]string{"block_letter"})

	r.Register("box",
		standardFactory(boxBase, container, []string{"box"}, []MaterialOption{
			NewMaterialOption("plastic"),
		}),
		[]string{"plastic"})

	r.Register("bowl",
		standardFactory(bowlBase, pickupable, []string{"bowl"}, []MaterialOption{
			NewMaterialOption("plastic"),
			NewMaterialOption("ceramic"),
			NewMaterialOption("wood"),
		}),
		[]string{"plastic", "ceramic", "wood"})

	r.Register("cup",
		standardFactory(cupBase, pickupable, []string{"cup"}, []MaterialOption{
			NewMaterialOption("plastic"),
			NewMaterialOption("ceramic"),
		}),
		[]string{"plastic", "ceramic"})

	r.Register("plate",
		standardFactory(plateBase, pickupable, []string{"plate"}, []MaterialOption{
			NewMaterialOption("plastic"),
			NewMaterialOption("ceramic"),
		}),
		[]string{"plastic", "ceramic"})

	r.Register("sofa",
		standardFactory(sofaBase, Attributes{Moveable: true}, []string{"sofa"}, []MaterialOption{
			NewMaterialOption("fabric"),
		}),
		[]string{"fabric"})

	r.Register("table",
		standardFactory(tableBase, furniture, []string{"table"}, []MaterialOption{
			NewMaterialOption("wood"),
			NewMaterialOption("metal"),
		}),
		[]string{"wood", "metal"})

	r.Register("shelf",
		standardFactory(shelfBase, Attributes{Receptacle: true}, []string{"shelf"}, []MaterialOption{
			NewMaterialOption("wood"),
			NewMaterialOption("metal"),
		}),
		[]string{"wood", "metal"})

	r.Register("barrel",
		standardFactory(barrelBase, Attributes{Moveable: true, Receptacle: true, Openable: true},
			[]string{"barrel"}, []MaterialOption{
				NewMaterialOption("wood"),
				NewMaterialOption("metal"),
			}),
		[]string{"wood", "metal"})

	r.Register("apple_1",
		literalFactory(appleBase, pickupable, []string{"apple"},
			[]string{"materials/fruit/apple_red"}, []string{"red"}, []string{"food"}),
		[]string{})
	r.Register("apple_2",
		literalFactory(appleBase, pickupable, []string{"apple"},
			[]string{"materials/fruit/apple_green"}, []string{"green"}, []string{"food"}),
		[]string{})

	r.Register("crayon_blue",
		literalFactory(crayonBase, pickupable, []string{"crayon"},
			[]string{"materials/crayon/blue"}, []string{"blue"}, []string{"wax"}),
		[]string{})
	r.Register("crayon_red",
		literalFactory(crayonBase, pickupable, []string{"crayon"},
			[]string{"materials/crayon/red"}, []string{"red"}, []string{"wax"}),
		[]string{})

	r.Register("duck_toy",
		standardFactory(duckBase, pickupable, []string{"duck"}, []MaterialOption{
			NewMaterialOption("rubber"),
		}),
		[]string{"rubber"})

	r.Register("trophy",
		func(chosen []MaterialOption, multipliers []float64, typeName string) Definition {
			d := standardFactory(trophyBase, pickupable, []string{"trophy"}, []MaterialOption{
				NewMaterialOption("metal"),
			})(chosen, multipliers, typeName)
			d.UntrainedShape = true
			return d
		},
		[]string{"metal"})

	return r
}
