// Package category holds the fixed set of expense categories an
// utterance may be classified into. The set is process-wide and
// immutable; membership is case-sensitive exact match.
package category

import "strings"

// labels is the full taxonomy, in the order shown to users and to the
// extraction model.
var labels = []string{
	"Food", "Travel", "Shopping", "Entertainment", "Bills", "Health",
	"Stationery", "Misc", "Education", "Groceries", "Rent", "Utilities",
	"Subscriptions", "Investments", "Gifts", "Donations", "Fuel",
	"Maintenance", "Insurance", "Personal Care", "Others",
}

// Registry answers membership questions about the category taxonomy.
type Registry struct {
	labels []string
	set    map[string]bool
}

// NewRegistry builds the registry over the fixed label set.
func NewRegistry() *Registry {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return &Registry{labels: labels, set: set}
}

// Contains reports whether name is exactly one of the allowed labels.
func (r *Registry) Contains(name string) bool {
	return r.set[name]
}

// Labels returns the allowed labels in display order. Callers must not
// modify the returned slice.
func (r *Registry) Labels() []string {
	return r.labels
}

// List returns the labels as a single comma-separated string, for
// prompts and clarifying questions.
func (r *Registry) List() string {
	return strings.Join(r.labels, ", ")
}
