// Package classify maps resolved raw tables to canonical transactions. Each
// SourceKind has a dedicated rule; rules are looked up through a registry so
// the row-to-transaction mapping stays isolated per kind and testable.
package classify

import (
	"github.com/fluxo-dev/fluxo/internal/model"
)

// DefaultPendingMarker is the parcel-status value meaning "awaiting receipt"
// in the ERP exports. Overridable per workspace.
const DefaultPendingMarker = "A receber"

// Options carries the per-kind locale toggles and the pending-receipt marker.
type Options struct {
	// LocaleAmounts flags kinds whose amount cells use Brazilian separators.
	LocaleAmounts map[model.SourceKind]bool
	PendingMarker string
}

func (o Options) localeFor(kind model.SourceKind) bool {
	return o.LocaleAmounts[kind]
}

func (o Options) marker() string {
	if o.PendingMarker == "" {
		return DefaultPendingMarker
	}
	return o.PendingMarker
}

// Rule turns the rows of one table kind into transactions. The returned
// warnings summarize rows that were dropped or collapsed.
type Rule interface {
	Kind() model.SourceKind
	Classify(t model.RawTable, opts Options) ([]model.Transaction, []string)
}

// Registry holds the rule for each recognized kind.
type Registry struct {
	rules map[model.SourceKind]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[model.SourceKind]Rule)}
}

// Register adds a rule. Panics on duplicate kind.
func (r *Registry) Register(rule Rule) {
	if _, ok := r.rules[rule.Kind()]; ok {
		panic("duplicate rule for kind: " + string(rule.Kind()))
	}
	r.rules[rule.Kind()] = rule
}

// Get returns the rule for kind, or nil.
func (r *Registry) Get(kind model.SourceKind) Rule {
	return r.rules[kind]
}

// DefaultRegistry returns a registry with all built-in rules.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PaidRule{})
	r.Register(&PayableRule{})
	r.Register(&ReceivableRule{})
	return r
}
