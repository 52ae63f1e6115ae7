package checksum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum_SameContentSameDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	content := []byte("Work No,Name,Dept.\n08:00 17:00\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	fromFile, err := FileChecksum(path)
	require.NoError(t, err)

	fromReader, err := ReaderChecksum(strings.NewReader(string(content)))
	require.NoError(t, err)

	assert.Equal(t, fromFile, fromReader)
	assert.Equal(t, fromFile, BytesChecksum(content))
	assert.Len(t, fromFile, 16)
}

func TestChecksum_DifferentContent(t *testing.T) {
	assert.NotEqual(t, BytesChecksum([]byte("a")), BytesChecksum([]byte("b")))
}

func TestFileChecksum_MissingFile(t *testing.T) {
	_, err := FileChecksum(filepath.Join(t.TempDir(), "missing.xls"))
	assert.Error(t, err)
}
