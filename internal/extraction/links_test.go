package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotateLinks_NoURLsUnchanged(t *testing.T) {
	assert.Equal(t, "no links here", AnnotateLinks("no links here"))
}

func TestAnnotateLinks_LabelsKnownPlatforms(t *testing.T) {
	text := AnnotateLinks("See https://github.com/jane and https://linkedin.com/in/jane plus https://jane.dev")

	assert.Contains(t, text, "Extracted Links:")
	assert.Contains(t, text, "GitHub: https://github.com/jane")
	assert.Contains(t, text, "LinkedIn: https://linkedin.com/in/jane")
	assert.Contains(t, text, "Link: https://jane.dev")
}

func TestAnnotateLinks_Deduplicates(t *testing.T) {
	text := AnnotateLinks("https://jane.dev again https://jane.dev")

	assert.Equal(t, 1, strings.Count(text, "Link: https://jane.dev"))
}

func TestStripDocxMarkup(t *testing.T) {
	raw := `<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second &amp; third</w:t></w:r></w:p>`

	plain := stripDocxMarkup(raw)

	assert.Equal(t, "First paragraph\nSecond & third", plain)
}
