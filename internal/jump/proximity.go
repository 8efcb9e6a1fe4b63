package jump

import (
	"github.com/emirpasic/gods/maps/treemap"

	"leapview/internal/domain"
)

// OrderByProximity reorders an initial scan so that matches on lines close
// to the cursor come first and therefore get the first labels.
//
// Matches are grouped by line. The group nearest the cursor line is emitted
// first (ties go to the lower line), then groups are taken alternately below
// and above it, moving outward, until one side runs out and the other is
// drained. Order inside a group is scan order.
func OrderByProximity(matches []domain.Match, cursor domain.Position) []domain.Match {
	if len(matches) == 0 {
		return nil
	}

	groups := treemap.NewWithIntComparator()
	for _, m := range matches {
		line := m.Span.Start.Line
		g, _ := groups.Get(line)
		list, _ := g.([]domain.Match)
		groups.Put(line, append(list, m))
	}

	lines := groups.Keys()
	nearest := 0
	best := -1
	for i, k := range lines {
		d := abs(k.(int) - cursor.Line)
		if best < 0 || d < best {
			best = d
			nearest = i
		}
	}

	emit := func(ordered []domain.Match, i int) []domain.Match {
		g, _ := groups.Get(lines[i])
		return append(ordered, g.([]domain.Match)...)
	}

	ordered := make([]domain.Match, 0, len(matches))
	ordered = emit(ordered, nearest)
	below, above := nearest+1, nearest-1
	for below < len(lines) && above >= 0 {
		ordered = emit(ordered, below)
		ordered = emit(ordered, above)
		below++
		above--
	}
	for ; below < len(lines); below++ {
		ordered = emit(ordered, below)
	}
	for ; above >= 0; above-- {
		ordered = emit(ordered, above)
	}
	return ordered
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
