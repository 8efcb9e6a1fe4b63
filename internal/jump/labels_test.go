package jump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateLabelsRemovesCollisions(t *testing.T) {
	got := CandidateLabels([]rune("asdf"), []string{"s", "", " ", "s"}, false)
	assert.Equal(t, []rune("adf"), got)
}

func TestCandidateLabelsFoldsCase(t *testing.T) {
	assert.Equal(t, []rune("aSdf"), CandidateLabels([]rune("aSdf"), []string{"s"}, false))
	assert.Equal(t, []rune("adf"), CandidateLabels([]rune("aSdf"), []string{"s"}, true))
}

func newMarkers(n int) []*Marker {
	out := make([]*Marker, n)
	for i := range out {
		out[i] = &Marker{ID: i}
	}
	return out
}

func labelsOf(markers []*Marker) []string {
	out := make([]string, len(markers))
	for i, m := range markers {
		out[i] = m.Label
	}
	return out
}

func TestAssignLabelsUsesAlphabetOrder(t *testing.T) {
	markers := newMarkers(3)
	unlabeled := AssignLabels(markers, []rune("jkl;"))
	assert.Empty(t, unlabeled)
	assert.Equal(t, []string{"j", "k", "l"}, labelsOf(markers))
}

func TestAssignLabelsKeepsStillLegalLabels(t *testing.T) {
	markers := newMarkers(3)
	markers[0].Label = "l"
	markers[2].Label = "j"

	AssignLabels(markers, []rune("jkl"))
	assert.Equal(t, []string{"l", "k", "j"}, labelsOf(markers))
}

func TestAssignLabelsReplacesIllegalLabel(t *testing.T) {
	markers := newMarkers(2)
	markers[0].Label = "x"
	markers[1].Label = "j"

	AssignLabels(markers, []rune("jk"))
	assert.Equal(t, []string{"k", "j"}, labelsOf(markers))
}

func TestAssignLabelsExhaustedPoolHidesRest(t *testing.T) {
	markers := newMarkers(4)
	unlabeled := AssignLabels(markers, []rune("ab"))

	require.Len(t, unlabeled, 2)
	assert.Equal(t, []string{"a", "b", "", ""}, labelsOf(markers))
	assert.Same(t, markers[2], unlabeled[0])
}

func TestAssignLabelsDuplicateKeptLabelOnlyOnce(t *testing.T) {
	markers := newMarkers(2)
	markers[0].Label = "a"
	markers[1].Label = "a"

	AssignLabels(markers, []rune("ab"))
	assert.Equal(t, []string{"a", "b"}, labelsOf(markers))
}
