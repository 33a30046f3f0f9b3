package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/aquality/internal/relation"
)

func pairs(ps ...string) *relation.Mapping {
	var out []relation.Pair
	for i := 0; i+1 < len(ps); i += 2 {
		out = append(out, relation.Pair{Concept: ps[i], Construct: ps[i+1]})
	}
	return relation.NewMapping(out...)
}

func counts(t *testing.T, r *Result) map[string]int {
	t.Helper()
	out := make(map[string]int, len(r.Scores))
	for _, s := range r.Scores {
		out[s.Metric.Name] = s.Count
	}
	return out
}

func TestEvaluate_OverloadedConstruct(t *testing.T) {
	model := []string{"A", "B"}
	tools := []Tool{{
		Name:       "tool.txt",
		Constructs: []string{"x", "y"},
		Mapping:    pairs("A", "x", "B", "x"),
	}}

	r, err := Evaluate(model, tools, DefaultMetrics())
	require.NoError(t, err)

	assert.Equal(t, 2, r.ConceptCount)
	assert.Equal(t, 2, r.ConstructCount)
	assert.Equal(t, 1, r.ToolCount)
	assert.Equal(t, map[string]int{
		Laconicity:   1,
		Lucidity:     2,
		Completeness: 1,
		Soundness:    2,
	}, counts(t, r))

	s, ok := r.Score(Completeness)
	require.True(t, ok)
	assert.InDelta(t, 0.5, s.Ratio(), 1e-9)
	assert.Equal(t, 2, s.Total)

	s, ok = r.Score(Lucidity)
	require.True(t, ok)
	assert.InDelta(t, 1.0, s.Ratio(), 1e-9)
}

// An unmapped construct has at most one concept, so it is laconic without
// being complete.
func TestEvaluate_UnmappedConstructIsLaconic(t *testing.T) {
	model := []string{"A", "B"}
	tools := []Tool{{
		Constructs: []string{"x", "y"},
		Mapping:    pairs("A", "x", "B", "x"),
	}}

	r, err := Evaluate(model, tools, DefaultMetrics())
	require.NoError(t, err)

	laconic, ok := r.Score(Laconicity)
	require.True(t, ok)
	assert.Equal(t, 1, laconic.Count)
	assert.InDelta(t, 0.5, laconic.Ratio(), 1e-9)

	complete, ok := r.Score(Completeness)
	require.True(t, ok)
	assert.Equal(t, 1, complete.Count)
}

func TestEvaluate_ScoresFollowMetricOrder(t *testing.T) {
	r, err := Evaluate([]string{"A"}, []Tool{{Constructs: []string{"x"}}}, DefaultMetrics())
	require.NoError(t, err)

	var names []string
	for _, s := range r.Scores {
		names = append(names, s.Metric.Name)
	}
	assert.Equal(t, []string{Laconicity, Lucidity, Completeness, Soundness}, names)
}

func TestEvaluate_EmptyMapping(t *testing.T) {
	model := []string{"A", "B", "C"}
	tools := []Tool{{Constructs: []string{"x", "y"}, Mapping: relation.NewMapping()}}

	r, err := Evaluate(model, tools, DefaultMetrics())
	require.NoError(t, err)

	// Unmapped elements are vacuously laconic and lucid, but neither
	// complete nor sound.
	assert.Equal(t, map[string]int{
		Laconicity:   2,
		Lucidity:     3,
		Completeness: 0,
		Soundness:    0,
	}, counts(t, r))
}

func TestEvaluate_DegenerateInput(t *testing.T) {
	tests := []struct {
		name  string
		model []string
		tools []Tool
		want  error
	}{
		{
			name:  "empty model",
			model: nil,
			tools: []Tool{{Constructs: []string{"x"}}},
			want:  ErrNoConcepts,
		},
		{
			name:  "empty model and tools reports concepts first",
			model: nil,
			tools: nil,
			want:  ErrNoConcepts,
		},
		{
			name:  "no tools",
			model: []string{"A"},
			tools: nil,
			want:  ErrNoConstructs,
		},
		{
			name:  "tools without constructs",
			model: []string{"A"},
			tools: []Tool{{Mapping: pairs("A", "x")}, {}},
			want:  ErrNoConstructs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Evaluate(tt.model, tt.tools, DefaultMetrics())
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, r)
		})
	}
}

func TestEvaluate_ConstructCountIsPerTool(t *testing.T) {
	model := []string{"A"}
	tools := []Tool{
		{Constructs: []string{"x", "y"}, Mapping: pairs("A", "x")},
		{Constructs: []string{"x"}, Mapping: pairs("A", "x")},
	}

	r, err := Evaluate(model, tools, DefaultMetrics())
	require.NoError(t, err)

	assert.Equal(t, 3, r.ConstructCount)
	assert.Equal(t, 2, counts(t, r)[Completeness])
	assert.Equal(t, 3, counts(t, r)[Laconicity])
}

func TestEvaluate_DanglingPairsAreAccepted(t *testing.T) {
	// Q and q appear in the mapping only; they still overload x.
	model := []string{"A"}
	tools := []Tool{{Constructs: []string{"x"}, Mapping: pairs("A", "x", "Q", "x", "A", "q")}}

	r, err := Evaluate(model, tools, DefaultMetrics())
	require.NoError(t, err)

	assert.Equal(t, 0, counts(t, r)[Laconicity])
	assert.Equal(t, 0, counts(t, r)[Lucidity])
	assert.Equal(t, 1, counts(t, r)[Completeness])
	assert.Equal(t, 1, counts(t, r)[Soundness])
}

func TestEvaluate_SingleToolMatchesPredicateAverage(t *testing.T) {
	model := []string{"A", "B", "C", "D"}
	m := pairs("A", "x", "A", "y", "B", "y", "C", "z")
	tools := []Tool{{Constructs: []string{"x", "y", "z", "w"}, Mapping: m}}

	r, err := Evaluate(model, tools, DefaultMetrics())
	require.NoError(t, err)

	lucid, sound := 0, 0
	for _, c := range model {
		lucid += relation.Lucid(m, c)
		sound += relation.Sound(m, c)
	}
	assert.Equal(t, lucid, counts(t, r)[Lucidity])
	assert.Equal(t, sound, counts(t, r)[Soundness])
}

func TestEvaluate_LucidityTakesWorstTool(t *testing.T) {
	model := []string{"A", "B"}
	single := []Tool{{Name: "t1", Constructs: []string{"x", "y"}, Mapping: pairs("A", "x", "B", "y")}}

	base, err := Evaluate(model, single, DefaultMetrics())
	require.NoError(t, err)
	require.Equal(t, 2, counts(t, base)[Lucidity])

	// A is scattered over two constructs in the second tool only.
	both := append(single, Tool{Name: "t2", Constructs: []string{"p", "q"}, Mapping: pairs("A", "p", "A", "q")})
	r, err := Evaluate(model, both, DefaultMetrics())
	require.NoError(t, err)

	assert.Equal(t, 1, counts(t, r)[Lucidity])
	assert.LessOrEqual(t, counts(t, r)[Lucidity], counts(t, base)[Lucidity])
}

func TestEvaluate_SoundnessTakesBestTool(t *testing.T) {
	model := []string{"A", "B", "C"}
	single := []Tool{{Name: "t1", Constructs: []string{"x"}, Mapping: pairs("A", "x")}}

	base, err := Evaluate(model, single, DefaultMetrics())
	require.NoError(t, err)
	require.Equal(t, 1, counts(t, base)[Soundness])

	// B gains a realization in the second tool, C stays unrealized.
	both := append(single, Tool{Name: "t2", Constructs: []string{"p"}, Mapping: pairs("B", "p")})
	r, err := Evaluate(model, both, DefaultMetrics())
	require.NoError(t, err)

	assert.Equal(t, 2, counts(t, r)[Soundness])
	assert.GreaterOrEqual(t, counts(t, r)[Soundness], counts(t, base)[Soundness])
}

func TestEvaluate_OneToOneMapping(t *testing.T) {
	model := []string{"A", "B", "C"}
	tools := []Tool{{Constructs: []string{"x", "y", "z"}, Mapping: pairs("A", "x", "B", "y", "C", "z")}}

	r, err := Evaluate(model, tools, DefaultMetrics())
	require.NoError(t, err)

	c := counts(t, r)
	assert.Equal(t, r.ConstructCount, c[Laconicity])
	assert.Equal(t, r.ConstructCount, c[Completeness])
	assert.Equal(t, r.ConceptCount, c[Lucidity])
	assert.Equal(t, r.ConceptCount, c[Soundness])
}

func TestFold(t *testing.T) {
	tests := []struct {
		fold   Fold
		values []int
		want   int
	}{
		{FoldMin, []int{1}, 1},
		{FoldMin, []int{1, 0, 1}, 0},
		{FoldMax, []int{0}, 0},
		{FoldMax, []int{0, 1, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.fold.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fold.apply(tt.values))
		})
	}
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "construct", ScopeConstruct.String())
	assert.Equal(t, "concept", ScopeConcept.String())
	assert.Equal(t, "unknown", Scope(42).String())
	assert.Equal(t, "unknown", Fold(42).String())
}

func TestExplain(t *testing.T) {
	model := []string{"A", "B"}
	tools := []Tool{
		{Name: "t1", Constructs: []string{"x", "y"}, Mapping: pairs("A", "x", "B", "x")},
		{Name: "t2", Constructs: []string{"p"}, Mapping: pairs("A", "p")},
	}

	b := Explain(model, tools, DefaultMetrics())

	require.Len(t, b.Constructs, 3)
	assert.Equal(t, ConstructDetail{
		Tool:      "t1",
		Construct: "x",
		Concepts:  []string{"A", "B"},
		Marks:     map[string]int{"laconic": 0, "complete": 1},
	}, b.Constructs[0])
	assert.Equal(t, map[string]int{"laconic": 1, "complete": 0}, b.Constructs[1].Marks)
	assert.Equal(t, "p", b.Constructs[2].Construct)

	require.Len(t, b.Concepts, 2)
	assert.Equal(t, "B", b.Concepts[1].Concept)
	assert.Equal(t, []ToolConstructs{
		{Tool: "t1", Constructs: []string{"x"}},
		{Tool: "t2", Constructs: nil},
	}, b.Concepts[1].Tools)
	assert.Equal(t, map[string]int{"lucid": 1, "sound": 1}, b.Concepts[1].Marks)

	// Explain agrees with Evaluate.
	r, err := Evaluate(model, tools, DefaultMetrics())
	require.NoError(t, err)
	sum := map[string]int{}
	for _, d := range b.Constructs {
		for k, v := range d.Marks {
			sum[k] += v
		}
	}
	for _, d := range b.Concepts {
		for k, v := range d.Marks {
			sum[k] += v
		}
	}
	for _, s := range r.Scores {
		assert.Equal(t, s.Count, sum[s.Metric.Mark], s.Metric.Name)
	}
}
