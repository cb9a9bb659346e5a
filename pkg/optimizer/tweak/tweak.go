// Package tweak provides the catalogue of system tweaks. Each tweak is a
// declarative record pairing an identifier and safety metadata with an apply
// function; the CLI listing, profiles, and the runner are all driven from the
// same table.
package tweak

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupported indicates the tweak cannot be applied on this platform.
var ErrUnsupported = errors.New("tweak not supported on this platform")

// ErrUnknown indicates the tweak identifier is not in the catalogue.
var ErrUnknown = errors.New("unknown tweak")

// Risk classifies how disruptive a tweak can be.
type Risk string

// Risk levels from most benign to most disruptive.
const (
	RiskSafe   Risk = "safe"
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// ApplyFunc performs the OS mutation for one tweak. It returns nil on
// success; any error counts as a failed application.
type ApplyFunc func(ctx context.Context) error

// Tweak is a single named system modification with boolean success semantics.
type Tweak struct {
	// ID is the stable snake_case identifier used in profiles and the ledger.
	ID string

	// Name is the human-readable display name.
	Name string

	// Description explains what the tweak changes.
	Description string

	// Category groups tweaks for display (power, services, network, ...).
	Category string

	// Risk classifies how disruptive the tweak can be.
	Risk Risk

	// Reversible indicates the change can be undone by the OS or by
	// re-running the corresponding default.
	Reversible bool

	// NeedsAdmin indicates the tweak requires an elevated process.
	NeedsAdmin bool

	apply ApplyFunc
}

// New builds a tweak with the given ID and apply function. Catalogue entries
// are declared literally in catalog.go; New exists for callers that need
// ad-hoc tweaks, such as runner tests.
func New(id string, fn ApplyFunc) Tweak {
	return Tweak{ID: id, Name: id, apply: fn}
}

// Apply performs the tweak's OS mutation.
func (t Tweak) Apply(ctx context.Context) error {
	if t.apply == nil {
		return ErrUnsupported
	}
	return t.apply(ctx)
}

// Registry holds the tweak catalogue in declaration order.
type Registry struct {
	order []string
	byID  map[string]Tweak
}

// NewRegistry creates a registry from the given tweaks.
// Duplicate IDs panic; the catalogue is a compile-time artifact.
func NewRegistry(tweaks []Tweak) *Registry {
	r := &Registry{byID: make(map[string]Tweak, len(tweaks))}
	for _, t := range tweaks {
		if _, dup := r.byID[t.ID]; dup {
			panic(fmt.Sprintf("tweak: duplicate id %q", t.ID))
		}
		r.byID[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

// Get returns the tweak with the given ID.
func (r *Registry) Get(id string) (Tweak, error) {
	t, ok := r.byID[id]
	if !ok {
		return Tweak{}, fmt.Errorf("%w: %s", ErrUnknown, id)
	}
	return t, nil
}

// All returns the catalogue in declaration order.
func (r *Registry) All() []Tweak {
	out := make([]Tweak, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// IDs returns all tweak identifiers in declaration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Categories returns the distinct category names in sorted order.
func (r *Registry) Categories() []string {
	seen := make(map[string]struct{})
	for _, t := range r.byID {
		seen[t.Category] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// ByCategory returns the tweaks in the given category, in declaration order.
func (r *Registry) ByCategory(category string) []Tweak {
	var out []Tweak
	for _, id := range r.order {
		if t := r.byID[id]; t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Resolve maps tweak IDs to tweaks, reporting the first unknown ID.
func (r *Registry) Resolve(ids []string) ([]Tweak, error) {
	out := make([]Tweak, 0, len(ids))
	for _, id := range ids {
		t, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// defaultRegistry is built from the catalogue table in catalog.go.
var defaultRegistry = NewRegistry(catalog())

// Default returns the built-in tweak catalogue.
func Default() *Registry {
	return defaultRegistry
}
