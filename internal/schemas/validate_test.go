package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnhancedResume_Valid(t *testing.T) {
	doc := `{
		"name": "Jane Doe",
		"summary": "Engineer.",
		"experience": [{"title": "Dev", "company": "Acme", "dates": "2020", "bullets": ["did things"]}],
		"keywords_added": ["docker"],
		"keywords_skipped": [{"keyword": "cobol", "reason": "irrelevant"}]
	}`

	assert.NoError(t, ValidateEnhancedResume([]byte(doc)))
}

func TestValidateEnhancedResume_MinimalValid(t *testing.T) {
	assert.NoError(t, ValidateEnhancedResume([]byte(`{"name": "J", "summary": "S"}`)))
}

func TestValidateEnhancedResume_MissingRequired(t *testing.T) {
	err := ValidateEnhancedResume([]byte(`{"email": "x@y.z"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "name")
}

func TestValidateEnhancedResume_WrongTypes(t *testing.T) {
	err := ValidateEnhancedResume([]byte(`{"name": "J", "summary": "S", "keywords_added": "docker"}`))

	assert.Error(t, err)
}

func TestValidateEnhancedResume_NotJSON(t *testing.T) {
	assert.Error(t, ValidateEnhancedResume([]byte("definitely not json")))
}
