package rules

import (
	"fmt"
	"sort"

	"github.com/kosynka/patience/game"
)

var _ game.RuleSet = (*Klondike)(nil)

// Variant describes a playable rule-set configuration: an identifier,
// human-readable metadata and a constructor with the variant's
// parameters preset.
type Variant struct {
	Name        string
	Title       string
	Description string
	New         func() game.RuleSet
}

// Registry maps variant identifiers to constructible rule sets. It is
// built once at process start and passed to whatever needs it; there is
// no ambient global registry.
type Registry struct {
	variants map[string]Variant
}

// NewRegistry returns a registry preloaded with the built-in variants.
func NewRegistry() *Registry {
	r := &Registry{variants: map[string]Variant{}}
	r.Register(Variant{
		Name:        "klondike",
		Title:       "Klondike (1 card)",
		Description: "Classic solitaire, draw 1 card from stock",
		New:         func() game.RuleSet { return NewKlondike(false) },
	})
	r.Register(Variant{
		Name:        "klondike-3",
		Title:       "Klondike (3 cards)",
		Description: "Harder variant, draw 3 cards from stock",
		New:         func() game.RuleSet { return NewKlondike(true) },
	})
	return r
}

// Register adds or replaces a variant.
func (r *Registry) Register(v Variant) {
	r.variants[v.Name] = v
}

// Create constructs the rule set for the given identifier.
func (r *Registry) Create(name string) (game.RuleSet, error) {
	v, ok := r.variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q, available: %v",
			name, r.Available())
	}
	return v.New(), nil
}

// Available lists every registered identifier, sorted.
func (r *Registry) Available() []string {
	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variant returns the metadata for an identifier.
func (r *Registry) Variant(name string) (Variant, bool) {
	v, ok := r.variants[name]
	return v, ok
}
