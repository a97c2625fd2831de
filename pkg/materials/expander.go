package materials

import (
	"strings"
	"sync"
)

// Combination is one concrete assignment of a material to every category
// slot of an object, with the colors aggregated across slots.
type Combination struct {
	Materials      []string `json:"materials"`
	Colors         []string `json:"colors"`
	UntrainedColor bool     `json:"untrained_color,omitempty"`
}

// Expander enumerates the concrete material combinations for a list of
// category slots. Expansions are cached per distinct slot list, keyed on
// the order-sensitive join of the category names.
type Expander struct {
	mu    sync.Mutex
	cache map[string][]Combination
}

// NewExpander creates an expander with an empty cache.
func NewExpander() *Expander {
	return &Expander{cache: make(map[string][]Combination)}
}

// Expand returns every concrete combination for the given category slots.
// Repeated slots of one category all receive the same chosen material: a
// full cross-product over slots blows up for objects with many slots, and
// matching slots look better anyway, so each distinct category contributes
// one factor equal to its registered material count. An empty slot list
// yields a single empty pass-through combination. The returned slices are
// shared with the cache and must not be mutated.
func (e *Expander) Expand(slots []string) []Combination {
	if len(slots) == 0 {
		return []Combination{{}}
	}

	key := strings.Join(slots, ",")

	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.cache[key]; ok {
		return cached
	}

	combos := expandSlots(slots)
	e.cache[key] = combos
	return combos
}

func expandSlots(slots []string) []Combination {
	// Distinct categories in order of first appearance.
	var distinct []string
	seen := map[string]bool{}
	for _, c := range slots {
		if !seen[c] {
			seen[c] = true
			distinct = append(distinct, c)
		}
	}

	// Cross-product over distinct categories only.
	assignments := []map[string]Material{{}}
	for _, category := range distinct {
		options := In(category)
		if len(options) == 0 {
			options = []Material{{}}
		}
		var next []map[string]Material
		for _, partial := range assignments {
			for _, m := range options {
				extended := make(map[string]Material, len(partial)+1)
				for k, v := range partial {
					extended[k] = v
				}
				extended[category] = m
				next = append(next, extended)
			}
		}
		assignments = next
	}

	combos := make([]Combination, 0, len(assignments))
	for _, chosen := range assignments {
		combos = append(combos, buildCombination(slots, chosen))
	}
	return combos
}

func buildCombination(slots []string, chosen map[string]Material) Combination {
	combo := Combination{Materials: make([]string, 0, len(slots))}
	colorSeen := map[string]bool{}

	for _, category := range slots {
		m := chosen[category]
		if m.Name == "" {
			continue
		}
		combo.Materials = append(combo.Materials, m.Name)
		for _, color := range m.Colors {
			if !colorSeen[color] {
				colorSeen[color] = true
				combo.Colors = append(combo.Colors, color)
			}
		}
		if IsUntrainedColor(m.Name) {
			combo.UntrainedColor = true
		}
	}
	return combo
}
