package quality

// ConstructDetail describes how one construct of one tool is mapped
type ConstructDetail struct {
	Tool      string
	Construct string
	Concepts  []string
	Marks     map[string]int
}

// ToolConstructs lists the constructs a concept maps to within one tool
type ToolConstructs struct {
	Tool       string
	Constructs []string
}

// ConceptDetail describes how one model concept is mapped across all tools.
// Marks hold the folded value of every concept-scoped metric.
type ConceptDetail struct {
	Concept string
	Tools   []ToolConstructs
	Marks   map[string]int
}

// Breakdown is the per-element view behind a Result
type Breakdown struct {
	Metrics    []Metric
	Constructs []ConstructDetail
	Concepts   []ConceptDetail
}

// MetricsOf returns the metrics of the breakdown with the given scope
func (b *Breakdown) MetricsOf(scope Scope) []Metric {
	var out []Metric
	for _, m := range b.Metrics {
		if m.Scope == scope {
			out = append(out, m)
		}
	}
	return out
}

// Explain evaluates every predicate per element, in model and tool order.
func Explain(model []string, tools []Tool, metrics []Metric) *Breakdown {
	b := &Breakdown{Metrics: metrics}
	constructMetrics := b.MetricsOf(ScopeConstruct)
	conceptMetrics := b.MetricsOf(ScopeConcept)

	for _, t := range tools {
		for _, c := range t.Constructs {
			d := ConstructDetail{
				Tool:      t.Name,
				Construct: c,
				Concepts:  t.Mapping.Concepts(c),
				Marks:     make(map[string]int, len(constructMetrics)),
			}
			for _, m := range constructMetrics {
				d.Marks[m.Mark] = m.Predicate(t.Mapping, c)
			}
			b.Constructs = append(b.Constructs, d)
		}
	}

	for _, concept := range model {
		d := ConceptDetail{
			Concept: concept,
			Tools:   make([]ToolConstructs, 0, len(tools)),
			Marks:   make(map[string]int, len(conceptMetrics)),
		}
		for _, t := range tools {
			d.Tools = append(d.Tools, ToolConstructs{
				Tool:       t.Name,
				Constructs: t.Mapping.Constructs(concept),
			})
		}
		if len(tools) > 0 {
			for _, m := range conceptMetrics {
				d.Marks[m.Mark] = conceptValue(m, concept, tools)
			}
		}
		b.Concepts = append(b.Concepts, d)
	}

	return b
}
