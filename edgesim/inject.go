package edgesim

// Triple is one cross-level vertex similarity destined for injection:
// entity I of one level, entity J of the other, and their similarity.
type Triple struct {
	I   int
	J   int
	Sim float64
}

// Inject returns a copy of m with every triple written symmetrically:
// out[I,J] = out[J,I] = Sim. The injected value overrides whatever was
// stored. m itself is never mutated, so the per-level matrices survive
// across level pairs; injecting the same triples twice is a no-op on
// the result (idempotent).
func Inject(m *Matrix, triples []Triple) *Matrix {
	out := m.Clone()
	for _, t := range triples {
		out.Set(t.I, t.J, t.Sim)
	}

	return out
}
