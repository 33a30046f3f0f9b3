package relation

// Predicate evaluates a mapping at a single concept or construct.
// Implementations return 1 when the property holds and 0 otherwise.
type Predicate func(m *Mapping, element string) int

// Laconic reports whether at most one concept maps onto construct.
func Laconic(m *Mapping, construct string) int {
	return indicator(len(m.Concepts(construct)) <= 1)
}

// Lucid reports whether concept maps to at most one construct.
func Lucid(m *Mapping, concept string) int {
	return indicator(len(m.Constructs(concept)) <= 1)
}

// Complete reports whether at least one concept maps onto construct.
func Complete(m *Mapping, construct string) int {
	return indicator(len(m.Concepts(construct)) >= 1)
}

// Sound reports whether concept maps to at least one construct.
func Sound(m *Mapping, concept string) int {
	return indicator(len(m.Constructs(concept)) >= 1)
}

func indicator(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
