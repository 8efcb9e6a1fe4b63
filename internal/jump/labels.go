package jump

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CandidateLabels returns the alphabet without any rune that is a collision
// character for a live match. A label that could also continue the search
// would make "jump" and "keep typing" indistinguishable, so such runes are
// never offered. With fold set, collisions are compared case-insensitively.
func CandidateLabels(alphabet []rune, collisions []string, fold bool) []rune {
	blocked := make(map[rune]bool, len(collisions))
	for _, c := range collisions {
		if c == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(c)
		blocked[r] = true
		if fold {
			for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
				blocked[f] = true
			}
		}
	}

	out := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if !blocked[r] {
			out = append(out, r)
		}
	}
	return out
}

// labelPool hands out candidate labels as a stack. The candidates are
// pushed in reverse so that pops come out in alphabet order and a refilter
// after narrowing yields the same sequence again.
type labelPool struct {
	stack []rune
	free  map[rune]bool
}

func newLabelPool(candidates []rune) *labelPool {
	p := &labelPool{
		stack: make([]rune, 0, len(candidates)),
		free:  make(map[rune]bool, len(candidates)),
	}
	for i := len(candidates) - 1; i >= 0; i-- {
		p.stack = append(p.stack, candidates[i])
		p.free[candidates[i]] = true
	}
	return p
}

// take reserves a specific label if it is still free
func (p *labelPool) take(label string) bool {
	r, ok := singleRune(label)
	if !ok || !p.free[r] {
		return false
	}
	p.free[r] = false
	return true
}

// pop returns the next free label
func (p *labelPool) pop() (string, bool) {
	for len(p.stack) > 0 {
		r := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if p.free[r] {
			p.free[r] = false
			return string(r), true
		}
	}
	return "", false
}

// AssignLabels labels markers in order. A marker keeps its current label if
// that label is still a candidate; the others get fresh labels from the
// pool. Markers left over when the pool runs dry lose their label and are
// returned so the caller can hide them.
func AssignLabels(markers []*Marker, candidates []rune) (unlabeled []*Marker) {
	pool := newLabelPool(candidates)

	keep := make([]bool, len(markers))
	for i, m := range markers {
		keep[i] = m.Label != "" && pool.take(m.Label)
	}

	for i, m := range markers {
		if keep[i] {
			continue
		}
		label, ok := pool.pop()
		if !ok {
			m.Label = ""
			unlabeled = append(unlabeled, m)
			continue
		}
		m.Label = label
	}
	return unlabeled
}

func singleRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, false
	}
	return r[0], true
}

// equalChar compares two single characters, folding case when asked
func equalChar(a, b string, fold bool) bool {
	if fold {
		return strings.EqualFold(a, b)
	}
	return a == b
}
