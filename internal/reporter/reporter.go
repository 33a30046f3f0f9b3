// Package reporter renders evaluation results as text, a delimited table
// line, or JSON.
package reporter

import (
	"github.com/pthm/aquality/internal/quality"
)

// Reporter defines the interface for outputting evaluation results
type Reporter interface {
	// Report outputs the result. The breakdown is nil unless an
	// explanation was requested.
	Report(res *quality.Result, breakdown *quality.Breakdown) error
}

// Counts returns the denominators followed by every metric count, in
// metric order
func Counts(res *quality.Result) []int {
	out := make([]int, 0, 2+len(res.Scores))
	out = append(out, res.ConceptCount, res.ConstructCount)
	for _, s := range res.Scores {
		out = append(out, s.Count)
	}
	return out
}
