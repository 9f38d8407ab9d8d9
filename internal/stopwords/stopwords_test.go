package stopwords

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	set, err := Read(strings.NewReader("hai\n\n  Ka \r\nTHE\n"))
	require.NoError(t, err)

	assert.Len(t, set, 3)
	assert.True(t, set.Contains("hai"))
	assert.True(t, set.Contains("ka"))
	assert.True(t, set.Contains("the"))
	assert.False(t, set.Contains("THE"))
	assert.False(t, set.Contains("h"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nan\nthe\n"), 0o644))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, set, 3)
}

func TestLoad_Unreadable(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.txt")},
		{name: "empty path", path: ""},
		{name: "directory", path: t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Load(tt.path)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, ErrUnreadable)

			var ue *UnreadableError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, tt.path, ue.Path)
		})
	}
}

func TestZeroSet(t *testing.T) {
	var s Set
	assert.False(t, s.Contains("anything"))
}
