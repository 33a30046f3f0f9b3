package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/aquality/internal/quality"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Concepts   int            `json:"concepts"`
	Constructs int            `json:"constructs"`
	Tools      int            `json:"tools"`
	Metrics    []JSONMetric   `json:"metrics"`
	Breakdown  *JSONBreakdown `json:"breakdown,omitempty"`
}

// JSONMetric represents one metric in JSON format
type JSONMetric struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total int     `json:"total"`
	Ratio float64 `json:"ratio"`
}

// JSONBreakdown represents the per-element view in JSON format
type JSONBreakdown struct {
	Constructs []JSONConstruct `json:"constructs"`
	Concepts   []JSONConcept   `json:"concepts"`
}

// JSONConstruct represents one construct of one tool
type JSONConstruct struct {
	Tool      string         `json:"tool"`
	Construct string         `json:"construct"`
	Concepts  []string       `json:"concepts"`
	Marks     map[string]int `json:"marks"`
}

// JSONConcept represents one model concept across tools
type JSONConcept struct {
	Concept string              `json:"concept"`
	Tools   []JSONToolConstruct `json:"tools"`
	Marks   map[string]int      `json:"marks"`
}

// JSONToolConstruct lists the constructs of a concept within one tool
type JSONToolConstruct struct {
	Tool       string   `json:"tool"`
	Constructs []string `json:"constructs"`
}

// Report outputs the result as JSON
func (r *JSONReporter) Report(res *quality.Result, breakdown *quality.Breakdown) error {
	output := JSONOutput{
		Concepts:   res.ConceptCount,
		Constructs: res.ConstructCount,
		Tools:      res.ToolCount,
		Metrics:    make([]JSONMetric, 0, len(res.Scores)),
	}

	for _, s := range res.Scores {
		output.Metrics = append(output.Metrics, JSONMetric{
			Name:  s.Metric.Name,
			Count: s.Count,
			Total: s.Total,
			Ratio: s.Ratio(),
		})
	}

	if breakdown != nil {
		output.Breakdown = toJSONBreakdown(breakdown)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func toJSONBreakdown(b *quality.Breakdown) *JSONBreakdown {
	out := &JSONBreakdown{
		Constructs: make([]JSONConstruct, 0, len(b.Constructs)),
		Concepts:   make([]JSONConcept, 0, len(b.Concepts)),
	}

	for _, d := range b.Constructs {
		out.Constructs = append(out.Constructs, JSONConstruct{
			Tool:      d.Tool,
			Construct: d.Construct,
			Concepts:  nonNil(d.Concepts),
			Marks:     d.Marks,
		})
	}

	for _, d := range b.Concepts {
		c := JSONConcept{
			Concept: d.Concept,
			Tools:   make([]JSONToolConstruct, 0, len(d.Tools)),
			Marks:   d.Marks,
		}
		for _, tc := range d.Tools {
			c.Tools = append(c.Tools, JSONToolConstruct{
				Tool:       tc.Tool,
				Constructs: nonNil(tc.Constructs),
			})
		}
		out.Concepts = append(out.Concepts, c)
	}

	return out
}

// nonNil keeps empty lists as [] rather than null
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
