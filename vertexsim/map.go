package vertexsim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jay11071998/integreat/dataset"
	"github.com/jay11071998/integreat/edgesim"
	"github.com/jay11071998/integreat/ids"
)

// pairKey is an ordered level-name pair; triples are stored with I
// belonging to the lexicographically smaller level.
type pairKey struct {
	lo string
	hi string
}

func keyOf(l1, l2 string) (pairKey, bool) {
	if l1 <= l2 {
		return pairKey{lo: l1, hi: l2}, false
	}

	return pairKey{lo: l2, hi: l1}, true
}

// Map holds cross-level entity similarities per unordered level pair.
// Read-only after construction.
type Map struct {
	pairs map[pairKey][]edgesim.Triple
}

// Pairs returns the triples for (l1, l2) oriented so that I is an
// entity of l1 and J an entity of l2. Nil when the pair has none.
func (m *Map) Pairs(l1, l2 string) []edgesim.Triple {
	key, swapped := keyOf(l1, l2)
	stored := m.pairs[key]
	if !swapped {
		return stored
	}
	out := make([]edgesim.Triple, len(stored))
	for n, t := range stored {
		out[n] = edgesim.Triple{I: t.J, J: t.I, Sim: t.Sim}
	}

	return out
}

func (m *Map) add(l1, l2 string, t edgesim.Triple) {
	key, swapped := keyOf(l1, l2)
	if swapped {
		t.I, t.J = t.J, t.I
	}
	m.pairs[key] = append(m.pairs[key], t)
}

// FromRows builds the map from user-supplied vertex CSV rows. Every
// row must reference known levels and entities measured in them.
func FromRows(rows []dataset.VertexRow, reg *ids.Registry, levels map[string]*dataset.StandardLevel) (*Map, error) {
	m := &Map{pairs: make(map[pairKey][]edgesim.Triple)}
	for n, row := range rows {
		if row.Level1 == row.Level2 {
			return nil, fmt.Errorf("row %d: level %q: %w", n+1, row.Level1, ErrSameLevel)
		}
		i, err := entityIn(row.Level1, row.Vertex1, reg, levels)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}
		j, err := entityIn(row.Level2, row.Vertex2, reg, levels)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}
		m.add(row.Level1, row.Level2, edgesim.Triple{I: i, J: j, Sim: row.Similarity})
	}
	m.sortTriples()

	return m, nil
}

func entityIn(level, entity string, reg *ids.Registry, levels map[string]*dataset.StandardLevel) (int, error) {
	lvl, ok := levels[level]
	if !ok {
		return 0, fmt.Errorf("level %q: %w", level, ErrUnknownLevel)
	}
	i, ok := reg.Index(entity)
	if !ok || !lvl.Has(i) {
		return 0, fmt.Errorf("entity %q in level %q: %w", entity, level, ErrUnknownEntity)
	}

	return i, nil
}

// Identity builds the default map: similarity 1 on name equality, plus
// the entity-diff rule when sep is non-empty. Triples are emitted in
// ascending (I, J) order per level pair.
func Identity(levels map[string]*dataset.StandardLevel, order []string, reg *ids.Registry, sep string) *Map {
	m := &Map{pairs: make(map[pairKey][]edgesim.Triple)}
	for a := 0; a < len(order); a++ {
		for b := a + 1; b < len(order); b++ {
			l1, l2 := levels[order[a]], levels[order[b]]
			for _, i := range l1.Entities() {
				for _, j := range l2.Entities() {
					if identical(i, j, reg, sep) {
						m.add(l1.Name, l2.Name, edgesim.Triple{I: i, J: j, Sim: 1})
					}
				}
			}
		}
	}
	m.sortTriples()

	return m
}

// identical implements the default equality: same index, or, with a
// separator, exactly one name contains it and the prefixes up to its
// first occurrence agree.
func identical(i, j int, reg *ids.Registry, sep string) bool {
	if i == j {
		return true
	}
	if sep == "" {
		return false
	}
	a, _ := reg.Lookup(i)
	b, _ := reg.Lookup(j)
	inA, inB := strings.Contains(a, sep), strings.Contains(b, sep)
	if inA == inB {
		return false
	}
	prefix := func(s string) string {
		if n := strings.Index(s, sep); n >= 0 {
			return s[:n]
		}

		return s
	}

	return prefix(a) == prefix(b)
}

// sortTriples fixes a deterministic (I, J) ascending order per pair.
func (m *Map) sortTriples() {
	for key := range m.pairs {
		ts := m.pairs[key]
		sort.Slice(ts, func(x, y int) bool {
			if ts[x].I != ts[y].I {
				return ts[x].I < ts[y].I
			}

			return ts[x].J < ts[y].J
		})
	}
}
