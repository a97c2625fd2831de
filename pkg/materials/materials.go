package materials

import "sort"

// Material pairs a renderable material name with the colors it shows as.
type Material struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// categories maps a salient material family to every registered material
// belonging to it. This is a representative catalog; the rendering engine
// owns the full texture library.
var categories = map[string][]Material{
	"wood": {
		{Name: "materials/wood/oak_light", Colors: []string{"brown"}},
		{Name: "materials/wood/oak_dark", Colors: []string{"brown", "black"}},
		{Name: "materials/wood/birch", Colors: []string{"cream"}},
		{Name: "materials/wood/walnut", Colors: []string{"brown"}},
		{Name: "materials/wood/painted_blue", Colors: []string{"blue"}},
		{Name: "materials/wood/painted_red", Colors: []string{"red"}},
	},
	"metal": {
		{Name: "materials/metal/brushed_steel", Colors: []string{"grey"}},
		{Name: "materials/metal/brass", Colors: []string{"yellow"}},
		{Name: "materials/metal/copper", Colors: []string{"orange"}},
		{Name: "materials/metal/cast_iron", Colors: []string{"black"}},
		{Name: "materials/metal/anodized_green", Colors: []string{"green"}},
	},
	"plastic": {
		{Name: "materials/plastic/gloss_white", Colors: []string{"white"}},
		{Name: "materials/plastic/gloss_blue", Colors: []string{"blue"}},
		{Name: "materials/plastic/matte_yellow", Colors: []string{"yellow"}},
		{Name: "materials/plastic/matte_pink", Colors: []string{"pink"}},
	},
	"rubber": {
		{Name: "materials/rubber/smooth_black", Colors: []string{"black"}},
		{Name: "materials/rubber/smooth_red", Colors: []string{"red"}},
		{Name: "materials/rubber/textured_grey", Colors: []string{"grey"}},
	},
	"fabric": {
		{Name: "materials/fabric/linen_cream", Colors: []string{"cream"}},
		{Name: "materials/fabric/denim", Colors: []string{"blue"}},
		{Name: "materials/fabric/plaid", Colors: []string{"red", "green"}},
	},
	"ceramic": {
		{Name: "materials/ceramic/glazed_white", Colors: []string{"white"}},
		{Name: "materials/ceramic/terracotta", Colors: []string{"orange", "brown"}},
	},
	"block_letter": {
		{Name: "materials/blocks/letter_painted", Colors: []string{"blue", "yellow"}},
		{Name: "materials/blocks/letter_natural", Colors: []string{"brown"}},
	},
}

// untrainedColorMaterials lists materials whose color is withheld from
// training scenes and only appears in evaluation scenes.
var untrainedColorMaterials = map[string]bool{
	"materials/metal/anodized_green": true,
	"materials/plastic/matte_pink":   true,
	"materials/wood/painted_red":     true,
}

// massMultipliers gives the mass contribution of a material family.
// Families not listed contribute 1.
var massMultipliers = map[string]float64{
	"metal":   3,
	"wood":    2,
	"ceramic": 2,
	"rubber":  1.5,
	"plastic": 1,
	"fabric":  0.5,
}

// In maps a category name to its registered materials. Unknown categories
// return nil.
func In(category string) []Material {
	return categories[category]
}

// Exists reports whether the category is registered.
func Exists(category string) bool {
	_, ok := categories[category]
	return ok
}

// CategoryNames returns every registered category name, sorted.
func CategoryNames() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsUntrainedColor reports whether the material's color is reserved for
// evaluation scenes.
func IsUntrainedColor(materialName string) bool {
	return untrainedColorMaterials[materialName]
}

// MassMultiplier returns the mass contribution of a material family.
func MassMultiplier(category string) float64 {
	if m, ok := massMultipliers[category]; ok {
		return m
	}
	return 1
}
