package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLineEndings(t *testing.T) {
	n := New()
	assert.Equal(t, "alpha\nbeta\ngamma", n.Normalize("alpha\r\nbeta\rgamma\n"))
}

func TestNormalizePageNoise(t *testing.T) {
	n := New()

	in := "Intro text.\n\n12\n\nPage 3\nMore text.| P a g e 4\nEnd.\f"
	want := "Intro text.\n\nMore text.\nEnd."
	assert.Equal(t, want, n.Normalize(in))
}

func TestNormalizePageNumberKeepsParagraphBreak(t *testing.T) {
	n := New()

	// A page number wedged between two pages of prose must not glue the
	// paragraphs together.
	got := n.Normalize("end of first page.\n7\nstart of second page.")
	assert.Equal(t, "end of first page.\n\nstart of second page.", got)
}

func TestNormalizeKeepsProsePageReferences(t *testing.T) {
	n := New()
	in := "Details are given on Page 12 of the annex."
	assert.Equal(t, in, n.Normalize(in))
}

func TestNormalizeOCRSpacing(t *testing.T) {
	n := New()
	assert.Equal(t, "due to the lack of data", n.Normalize("due t o the lack o f data"))
	assert.Equal(t, "its scope", n.Normalize("i ts scope"))
}

func TestNormalizeBlankLineCollapse(t *testing.T) {
	n := New()
	assert.Equal(t, "alpha\n\nbeta", n.Normalize("alpha\n\n\n\n\nbeta"))
}

func TestNormalizeTrims(t *testing.T) {
	n := New()
	assert.Equal(t, "x", n.Normalize("  \n x \n\n"))
}

func TestNormalizeEmpty(t *testing.T) {
	n := New()
	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   \n\n  "))
}

func TestNormalizeDoubledLetters(t *testing.T) {
	n := New()
	assert.Equal(t, "This is a test", n.Normalize("TThhiiss iiss aa tteesstt"))
}

func TestNormalizeTripledLetters(t *testing.T) {
	n := New()
	assert.Equal(t, "no new data", n.Normalize("nnnooo nnneeewww dddaaatttaaa"))
}

func TestNormalizeDoubledLetterGate(t *testing.T) {
	n := New()

	// Natural doubles must survive: the repair only fires on the systematic
	// duplication signature.
	for _, in := range []string{
		"committee meeting",
		"The committee will address all issues.",
		"The committee meeting was held in March to review sector progress.",
	} {
		assert.Equal(t, in, n.Normalize(in), "input %q", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := New()

	inputs := []string{
		"Intro text.\n\n12\n\nPage 3\nMore text.| P a g e 4\nEnd.\f",
		"TThhiiss iiss aa tteesstt",
		"due t o the lack o f data",
		"a\r\nb\rc\n\n\n\nd",
		"The committee will address all issues.",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		require.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}
