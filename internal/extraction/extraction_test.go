package extraction

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Go engineer at https://github.com/jane"), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Go engineer")
	assert.Contains(t, text, "Extracted Links:")
	assert.Contains(t, text, "GitHub: https://github.com/jane")
}

func TestFromFile_UnsupportedFormat(t *testing.T) {
	_, err := FromFile("resume.odt")
	require.Error(t, err)

	var unsupported *ErrUnsupportedFormat
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".odt", unsupported.Format)
}

func TestFromBytes_TextAndUnknown(t *testing.T) {
	text, err := FromBytes("resume.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = FromBytes("resume.exe", []byte{0x4d, 0x5a})
	assert.Error(t, err)
}

func TestFromBytes_CorruptPDF(t *testing.T) {
	_, err := FromBytes("resume.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestSafeText_SentinelOnFailure(t *testing.T) {
	text := SafeText(filepath.Join(t.TempDir(), "missing.docx"))

	assert.Contains(t, text, "Error reading missing.docx")
}

func TestSafeText_PassThroughOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain resume"), 0o644))

	assert.Equal(t, "plain resume", SafeText(path))
}
