package repository

import (
	"fmt"
	"os"
	"strings"

	"employee-directory/internal/models"

	"gopkg.in/yaml.v3"
)

type directoryIndexFile struct {
	Employees []string `yaml:"employees"`
}

// LoadDirectoryIndex reads the curated slug list. The file may hold a bare YAML
// (or JSON) list, or a mapping with an "employees" key. Order is preserved and
// blank entries are dropped.
func LoadDirectoryIndex(path string) (models.DirectoryIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory index %s: %w", path, err)
	}
	return ParseDirectoryIndex(data)
}

// ParseDirectoryIndex parses directory index content
func ParseDirectoryIndex(data []byte) (models.DirectoryIndex, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse directory index: %w", err)
	}
	if len(node.Content) == 0 {
		return models.DirectoryIndex{}, nil
	}

	var slugs []string
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&slugs); err != nil {
			return nil, fmt.Errorf("failed to decode directory index list: %w", err)
		}
	case yaml.MappingNode:
		var file directoryIndexFile
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("failed to decode directory index: %w", err)
		}
		slugs = file.Employees
	default:
		return nil, fmt.Errorf("directory index must be a list of slugs or a mapping with an employees key")
	}

	index := make(models.DirectoryIndex, 0, len(slugs))
	for _, s := range slugs {
		if s = strings.TrimSpace(s); s != "" {
			index = append(index, s)
		}
	}
	return index, nil
}
