package dataset

import (
	"fmt"
	"sort"

	"github.com/jay11071998/integreat/ids"
)

// BuildLevels groups measurement rows by level, then by replicate, and
// returns one StandardLevel per level plus the sorted level-name order.
//
// Every entity name is interned into reg; the caller freezes the
// registry afterwards. Replicate order inside a level is the sorted
// order of replicate names, so vector layout is deterministic across
// runs. A repeated (level, replicate, entity) triple is fatal.
//
// Complexity: O(rows + levels·entities·replicates).
func BuildLevels(rows []Row, reg *ids.Registry) (map[string]*StandardLevel, []string, error) {
	// Pass 1: collect replicate name sets and per-triple intensities.
	type cell struct {
		entity    int
		replicate string
	}
	repNames := make(map[string]map[string]struct{})
	values := make(map[string]map[cell]float64)
	for _, row := range rows {
		idx, err := reg.Intern(row.Entity)
		if err != nil {
			return nil, nil, fmt.Errorf("entity %q: %w", row.Entity, err)
		}
		if repNames[row.Level] == nil {
			repNames[row.Level] = make(map[string]struct{})
			values[row.Level] = make(map[cell]float64)
		}
		repNames[row.Level][row.Replicate] = struct{}{}

		c := cell{entity: idx, replicate: row.Replicate}
		if _, dup := values[row.Level][c]; dup {
			return nil, nil, fmt.Errorf("level %q replicate %q entity %q: %w",
				row.Level, row.Replicate, row.Entity, ErrDuplicateRow)
		}
		values[row.Level][c] = row.Intensity
	}

	// Pass 2: lay out dense per-level vectors in sorted replicate order.
	levels := make(map[string]*StandardLevel, len(repNames))
	order := make([]string, 0, len(repNames))
	for name, reps := range repNames {
		sorted := make([]string, 0, len(reps))
		for rep := range reps {
			sorted = append(sorted, rep)
		}
		sort.Strings(sorted)

		lvl := &StandardLevel{
			Name:       name,
			Replicates: sorted,
			Vectors:    make(map[int][]Intensity),
		}
		for c, v := range values[name] {
			vec, ok := lvl.Vectors[c.entity]
			if !ok {
				vec = make([]Intensity, len(sorted))
				lvl.Vectors[c.entity] = vec
			}
			slot := sort.SearchStrings(sorted, c.replicate)
			vec[slot] = Intensity{Value: v, Present: true}
		}
		levels[name] = lvl
		order = append(order, name)
	}
	sort.Strings(order)

	return levels, order, nil
}
