package quality

import (
	"errors"

	"github.com/pthm/aquality/internal/relation"
)

var (
	// ErrNoConcepts is returned when the model contains no concepts
	ErrNoConcepts = errors.New("the abstraction does not contain any concepts")
	// ErrNoConstructs is returned when the tools contain no constructs
	ErrNoConstructs = errors.New("the tools do not contain any constructs")
)

// Tool is one tool's constructs together with the mapping of the model onto them
type Tool struct {
	Name       string
	Constructs []string
	Mapping    *relation.Mapping
}

// Score is the outcome of one metric
type Score struct {
	Metric Metric
	Count  int
	Total  int
}

// Ratio returns Count/Total. Total is never zero for scores produced by Evaluate.
func (s Score) Ratio() float64 {
	return float64(s.Count) / float64(s.Total)
}

// Result holds the denominators and the scores of an evaluation
type Result struct {
	ConceptCount   int
	ConstructCount int
	ToolCount      int
	Scores         []Score
}

// Score returns the score of the named metric
func (r *Result) Score(name string) (Score, bool) {
	for _, s := range r.Scores {
		if s.Metric.Name == name {
			return s, true
		}
	}
	return Score{}, false
}

// Evaluate computes every metric for model against tools.
// Construct counts are summed per tool, not deduplicated across tools.
func Evaluate(model []string, tools []Tool, metrics []Metric) (*Result, error) {
	r := &Result{
		ConceptCount:   len(model),
		ConstructCount: ConstructCount(tools),
		ToolCount:      len(tools),
		Scores:         make([]Score, 0, len(metrics)),
	}

	if r.ConceptCount == 0 {
		return nil, ErrNoConcepts
	}
	if r.ConstructCount == 0 {
		return nil, ErrNoConstructs
	}

	for _, m := range metrics {
		s := Score{Metric: m}
		switch m.Scope {
		case ScopeConstruct:
			s.Count = constructSum(m, tools)
			s.Total = r.ConstructCount
		case ScopeConcept:
			s.Count = conceptSum(m, model, tools)
			s.Total = r.ConceptCount
		}
		r.Scores = append(r.Scores, s)
	}

	return r, nil
}

// ConstructCount returns the number of constructs summed over all tools
func ConstructCount(tools []Tool) int {
	n := 0
	for _, t := range tools {
		n += len(t.Constructs)
	}
	return n
}

func constructSum(m Metric, tools []Tool) int {
	sum := 0
	for _, t := range tools {
		for _, c := range t.Constructs {
			sum += m.Predicate(t.Mapping, c)
		}
	}
	return sum
}

func conceptSum(m Metric, model []string, tools []Tool) int {
	sum := 0
	for _, concept := range model {
		sum += conceptValue(m, concept, tools)
	}
	return sum
}

// conceptValue folds the predicate for one concept across all tools.
func conceptValue(m Metric, concept string, tools []Tool) int {
	values := make([]int, len(tools))
	for i, t := range tools {
		values[i] = m.Predicate(t.Mapping, concept)
	}
	return m.Fold.apply(values)
}
