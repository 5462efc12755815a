package hashutil

import (
	"testing"

	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileChecksum(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/bin/chainsaw", []byte("Hello, World!\nThis is a test file.\n"), 0755))

	checksum, err := FileChecksum(fs, "/bin/chainsaw")
	require.NoError(t, err)

	// "sha256:" + 64 hex chars
	assert.Contains(t, checksum, "sha256:")
	assert.Len(t, checksum, 71)

	again, err := FileChecksum(fs, "/bin/chainsaw")
	require.NoError(t, err)
	assert.Equal(t, checksum, again)

	require.NoError(t, fs.WriteFile("/bin/chainsaw", []byte("rebuilt"), 0755))
	changed, err := FileChecksum(fs, "/bin/chainsaw")
	require.NoError(t, err)
	assert.NotEqual(t, checksum, changed)

	_, err = FileChecksum(fs, "/non/existent/file")
	assert.Error(t, err)
}

func TestFileChecksum_EmptyFile(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.WriteFile("/empty", nil, 0644))

	checksum, err := FileChecksum(fs, "/empty")
	require.NoError(t, err)
	assert.Equal(t, "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", checksum)
}
