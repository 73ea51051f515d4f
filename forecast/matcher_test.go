package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var labels = []string{
	"Chemistry",
	"Physics, Applied",
	"Computer Science, Information Systems",
	"Materials Science, Multidisciplinary",
}

func TestMatchExact(t *testing.T) {
	m := NewAliasMap(labels)
	assert.Equal(t, "Chemistry", m.Match("chemistry"))
}

func TestMatchIdempotent(t *testing.T) {
	// Matching an already-canonical label (lowercased) returns that label.
	m := NewAliasMap(labels)
	for _, label := range labels {
		tokens := SplitSubjects(label)
		// Comma-bearing labels split into fragments; the full lowercase
		// label still resolves via the substring rule.
		assert.Equal(t, label, m.Match(tokens[0]))
	}
	assert.Equal(t, "Chemistry", m.Match("chemistry"))
}

func TestMatchSubstring(t *testing.T) {
	m := NewAliasMap(labels)
	assert.Equal(t, "Physics, Applied", m.Match("physics"))
	assert.Equal(t, "Computer Science, Information Systems", m.Match("information systems"))
}

func TestMatchNone(t *testing.T) {
	m := NewAliasMap(labels)
	assert.Equal(t, "", m.Match("astrology"))
}

func TestMatchDeterministicTie(t *testing.T) {
	// "science" hits two labels; sorted alias order makes the winner stable.
	m := NewAliasMap(labels)
	assert.Equal(t, "Computer Science, Information Systems", m.Match("science"))
}

func TestMatchAll(t *testing.T) {
	m := NewAliasMap(labels)
	got := m.MatchAll([]string{"chemistry", "astrology", "physics"})
	assert.Equal(t, []string{"Chemistry", "Physics, Applied"}, got)
}

func TestSplitSubjects(t *testing.T) {
	got := SplitSubjects(" Chemistry , PHYSICS,, ,materials ")
	assert.Equal(t, []string{"chemistry", "physics", "materials"}, got)
}
