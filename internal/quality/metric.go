// Package quality aggregates relation predicates over a model and a set of
// tools into the laconicity, lucidity, completeness and soundness metrics.
package quality

import "github.com/pthm/aquality/internal/relation"

// Scope determines which elements a metric is evaluated on
type Scope int

const (
	// ScopeConstruct evaluates the predicate on every construct of every tool
	ScopeConstruct Scope = iota
	// ScopeConcept evaluates the predicate on every model concept, folded across tools
	ScopeConcept
)

func (s Scope) String() string {
	switch s {
	case ScopeConstruct:
		return "construct"
	case ScopeConcept:
		return "concept"
	default:
		return "unknown"
	}
}

// Fold combines the per-tool predicate values of one concept
type Fold int

const (
	// FoldMin keeps the worst value: the concept must hold in every tool
	FoldMin Fold = iota
	// FoldMax keeps the best value: the concept must hold in at least one tool
	FoldMax
)

func (f Fold) String() string {
	switch f {
	case FoldMin:
		return "min"
	case FoldMax:
		return "max"
	default:
		return "unknown"
	}
}

// apply folds values; values must not be empty.
func (f Fold) apply(values []int) int {
	acc := values[0]
	for _, v := range values[1:] {
		switch f {
		case FoldMin:
			acc = min(acc, v)
		case FoldMax:
			acc = max(acc, v)
		}
	}
	return acc
}

// Metric describes one ratio metric
type Metric struct {
	// Name is the metric name used in reports (e.g. "laconicity")
	Name string

	// Mark names the underlying predicate (e.g. "laconic")
	Mark string

	// Scope selects construct-indexed or concept-indexed evaluation
	Scope Scope

	// Fold combines per-tool values. Only used for ScopeConcept.
	Fold Fold

	// Predicate is evaluated per element
	Predicate relation.Predicate
}

// Metric names
const (
	Laconicity   = "laconicity"
	Lucidity     = "lucidity"
	Completeness = "completeness"
	Soundness    = "soundness"
)

// DefaultMetrics returns the four abstraction-quality metrics in report order
func DefaultMetrics() []Metric {
	return []Metric{
		{Name: Laconicity, Mark: "laconic", Scope: ScopeConstruct, Predicate: relation.Laconic},
		{Name: Lucidity, Mark: "lucid", Scope: ScopeConcept, Fold: FoldMin, Predicate: relation.Lucid},
		{Name: Completeness, Mark: "complete", Scope: ScopeConstruct, Predicate: relation.Complete},
		{Name: Soundness, Mark: "sound", Scope: ScopeConcept, Fold: FoldMax, Predicate: relation.Sound},
	}
}
