package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   \n\t  "))
}

func TestExtract_OnlyStopwords(t *testing.T) {
	assert.Empty(t, Extract("the and a of for with experience team skills"))
}

func TestExtract_LowercasesAndStripsPunctuation(t *testing.T) {
	tokens := Extract("Python, Django & REST-APIs (v2.0)!")

	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "django")
	// Hyphen and dot stripping merges the surrounding characters.
	assert.Contains(t, tokens, "restapis")
	assert.Contains(t, tokens, "v20")
	assert.NotContains(t, tokens, "Python")
}

func TestExtract_DropsShortTokens(t *testing.T) {
	tokens := Extract("a b c go rust")

	assert.NotContains(t, tokens, "a")
	assert.NotContains(t, tokens, "b")
	assert.NotContains(t, tokens, "c")
	assert.Contains(t, tokens, "go")
	assert.Contains(t, tokens, "rust")
}

func TestExtract_SortedAndDeduplicated(t *testing.T) {
	tokens := Extract("zebra apple zebra mango apple")

	assert.Equal(t, []string{"apple", "mango", "zebra"}, tokens)
}

func TestExtract_Deterministic(t *testing.T) {
	input := "Kubernetes Docker Terraform AWS kubernetes docker"
	first := Extract(input)
	second := Extract(input)

	assert.Equal(t, first, second)
}

// Every token in the output must be lowercase alphanumeric, at least two
// characters long, and absent from the stopword list.
func TestExtract_OutputInvariants(t *testing.T) {
	inputs := []string{
		"Senior Gopher with 10+ years of Go, gRPC and PostgreSQL experience.",
		"LOOKING FOR: C++/C# DEVELOPERS!!! Must know Azure & GCP...",
		"Error reading PDF: file is encrypted",
		"résumé naïve café", // accents are stripped
	}

	for _, input := range inputs {
		for _, token := range Extract(input) {
			assert.GreaterOrEqual(t, len(token), 2, "token %q from %q", token, input)
			assert.Equal(t, strings.ToLower(token), token)
			assert.False(t, IsStopword(token), "stopword %q leaked from %q", token, input)
			for _, r := range token {
				isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
				assert.True(t, isAlnum, "non-alphanumeric rune %q in token %q", r, token)
			}
		}
	}
}

func TestExtract_SentinelErrorStringIsJustTokenized(t *testing.T) {
	// Extraction failures arrive as plain text; they tokenize like anything else.
	tokens := Extract("Error reading PDF: unexpected EOF")

	assert.Contains(t, tokens, "error")
	assert.Contains(t, tokens, "pdf")
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("experience"))
	assert.True(t, IsStopword("responsibilities"))
	assert.False(t, IsStopword("developer"))
	assert.False(t, IsStopword("kubernetes"))
}

func TestSet(t *testing.T) {
	set := Set("go and rust")

	assert.Len(t, set, 2)
	assert.Contains(t, set, "go")
	assert.Contains(t, set, "rust")
}
