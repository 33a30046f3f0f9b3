// Package relation models the mapping between an abstraction's concepts and
// a tool's constructs as a set of pairs, and the predicates evaluated on it.
package relation

// Pair links one concept to one construct
type Pair struct {
	Concept   string
	Construct string
}

// Mapping is an immutable set of concept/construct pairs.
// A nil *Mapping behaves as the empty relation.
type Mapping struct {
	pairs []Pair
}

// NewMapping creates a mapping from pairs, dropping duplicates.
// The first occurrence of each pair determines its position.
func NewMapping(pairs ...Pair) *Mapping {
	seen := make(map[Pair]bool, len(pairs))
	m := &Mapping{pairs: make([]Pair, 0, len(pairs))}
	for _, p := range pairs {
		if seen[p] {
			continue
		}
		seen[p] = true
		m.pairs = append(m.pairs, p)
	}
	return m
}

// Pairs returns a copy of the pairs in insertion order
func (m *Mapping) Pairs() []Pair {
	if m == nil {
		return nil
	}
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Len returns the number of distinct pairs
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Concepts returns the distinct concepts mapped onto construct.
func (m *Mapping) Concepts(construct string) []string {
	if m == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, p := range m.pairs {
		if p.Construct != construct || seen[p.Concept] {
			continue
		}
		seen[p.Concept] = true
		out = append(out, p.Concept)
	}
	return out
}

// Constructs returns the distinct constructs concept is mapped to.
func (m *Mapping) Constructs(concept string) []string {
	if m == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, p := range m.pairs {
		if p.Concept != concept || seen[p.Construct] {
			continue
		}
		seen[p.Construct] = true
		out = append(out, p.Construct)
	}
	return out
}
