package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestScanRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "WhatsApp Chat with Bob.txt"), "1/2/23, 09:15 - Bob: hi\n")
	touch(t, filepath.Join(root, "family", "WhatsApp Chat with Family.TXT"), "x")
	touch(t, filepath.Join(root, "family", "IMG-0001.jpg"), "jpg")
	touch(t, filepath.Join(root, ".cache", "old.txt"), "x")

	files, err := ScanRoot(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join(root, "WhatsApp Chat with Bob.txt"), files[0].Path)
	assert.Equal(t, int64(len("1/2/23, 09:15 - Bob: hi\n")), files[0].Size)
	assert.Equal(t, filepath.Join(root, "family", "WhatsApp Chat with Family.TXT"), files[1].Path)
	assert.NotZero(t, files[1].Mtime)
}

func TestScanRoot_Missing(t *testing.T) {
	files, err := ScanRoot(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
