package jump

import (
	"regexp"

	"leapview/internal/domain"
)

// FindMatches returns the literal occurrences of search on the visible lines,
// in scan order. An empty search finds nothing.
func FindMatches(s Scanner, search string, caseInsensitive bool, visible []domain.LineRange) []domain.Match {
	if search == "" || len(visible) == 0 {
		return nil
	}

	raw := s.Scan(regexp.QuoteMeta(search), caseInsensitive, visible)

	// hosts are allowed to over-report; keep only matches that start on a
	// visible line and do not overlap the previous one
	matches := make([]domain.Match, 0, len(raw))
	var last *domain.Match
	for _, m := range raw {
		if !inRanges(m.Span.Start.Line, visible) {
			continue
		}
		if last != nil && last.Span.Start.Line == m.Span.Start.Line && m.Span.Start.Col < last.Span.End.Col {
			continue
		}
		matches = append(matches, m)
		last = &matches[len(matches)-1]
	}
	return matches
}

func inRanges(line int, ranges []domain.LineRange) bool {
	for _, r := range ranges {
		if r.Contains(line) {
			return true
		}
	}
	return false
}
