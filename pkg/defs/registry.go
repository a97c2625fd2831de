package defs

import (
	"fmt"
	"math/rand"
	"sort"
)

// ShapeNotFoundError is returned when an unregistered shape type is
// requested. It is always surfaced, never silently substituted.
type ShapeNotFoundError struct {
	Type string
}

func (e ShapeNotFoundError) Error() string {
	return fmt.Sprintf("shape not found: %q", e.Type)
}

// Factory builds a raw definition for one shape from the chosen material
// options and size multipliers. The returned definition has its choice
// lists populated but not resolved.
type Factory func(chosenMaterials []MaterialOption, sizeMultipliers []float64, typeName string) Definition

type registration struct {
	factory Factory
	// allowed is the material categories this shape accepts: nil means
	// unrestricted, an empty slice means the shape has fixed literal
	// materials and accepts none.
	allowed []string
}

// Registry maps shape type names to their factories and allowed material
// categories. It is the seam between the literal per-shape data and the
// resolution engine.
type Registry struct {
	shapes map[string]registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]registration)}
}

// Register adds a shape factory under the given type name.
func (r *Registry) Register(typeName string, factory Factory, allowedCategories []string) {
	r.shapes[typeName] = registration{factory: factory, allowed: allowedCategories}
}

// Types returns every registered shape type name, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateVariableDefinitionFromBase builds a raw definition for the given
// shape type with its choice lists populated. Passing nil for
// chosenMaterials keeps the shape's default material choices; an
// attribute override replaces the shape's default attributes wholesale.
func (r *Registry) CreateVariableDefinitionFromBase(
	typeName string,
	sizeMultipliers []float64,
	chosenMaterials []MaterialOption,
	attributeOverrides *Attributes,
) (Definition, error) {
	reg, ok := r.shapes[typeName]
	if !ok {
		return Definition{}, ShapeNotFoundError{Type: typeName}
	}

	d := reg.factory(chosenMaterials, sizeMultipliers, typeName)
	if attributeOverrides != nil {
		d.Attributes = *attributeOverrides
	}
	return New(d), nil
}

// IsValidShapeMaterial reports whether the shape accepts materials drawn
// from the given category. Shapes registered with a nil category list
// accept anything.
func (r *Registry) IsValidShapeMaterial(typeName, category string) bool {
	reg, ok := r.shapes[typeName]
	if !ok {
		return false
	}
	if reg.allowed == nil {
		return true
	}
	for _, c := range reg.allowed {
		if c == category {
			return true
		}
	}
	return false
}

// TypeFromMaterial picks a random shape type that accepts the given
// material category. It prefers shapes that list the category explicitly,
// falls back to an unrestricted shape, and reports false when no valid
// shape exists rather than forcing a bad pairing.
func (r *Registry) TypeFromMaterial(category string, rng *rand.Rand) (string, bool) {
	rng = rngOrDefault(rng)

	var explicit, unrestricted []string
	for _, name := range r.Types() {
		reg := r.shapes[name]
		switch {
		case reg.allowed == nil:
			unrestricted = append(unrestricted, name)
		default:
			for _, c := range reg.allowed {
				if c == category {
					explicit = append(explicit, name)
					break
				}
			}
		}
	}

	if len(explicit) > 0 {
		return explicit[rng.Intn(len(explicit))], true
	}
	if len(unrestricted) > 0 {
		candidate := unrestricted[rng.Intn(len(unrestricted))]
		if r.IsValidShapeMaterial(candidate, category) {
			return candidate, true
		}
	}
	return "", false
}
