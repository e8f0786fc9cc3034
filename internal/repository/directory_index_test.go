package repository

import (
	"os"
	"path/filepath"
	"testing"

	"employee-directory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectoryIndex(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected models.DirectoryIndex
	}{
		{"yaml list", "- jane-doe\n- john-smith\n", models.DirectoryIndex{"jane-doe", "john-smith"}},
		{"json list", `["b", "a", "c"]`, models.DirectoryIndex{"b", "a", "c"}},
		{"employees key", "employees:\n  - jane-doe\n  - '  '\n  - kim-park\n", models.DirectoryIndex{"jane-doe", "kim-park"}},
		{"empty file", "", models.DirectoryIndex{}},
		{"empty list", "[]", models.DirectoryIndex{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := ParseDirectoryIndex([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, index)
		})
	}
}

func TestParseDirectoryIndexRejectsScalars(t *testing.T) {
	_, err := ParseDirectoryIndex([]byte("just-a-string"))
	assert.Error(t, err)
}

func TestLoadDirectoryIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.yaml")
	require.NoError(t, os.WriteFile(path, []byte("employees: [jane-doe]\n"), 0o644))

	index, err := LoadDirectoryIndex(path)
	require.NoError(t, err)
	assert.Equal(t, models.DirectoryIndex{"jane-doe"}, index)

	_, err = LoadDirectoryIndex(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
