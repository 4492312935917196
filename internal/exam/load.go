package exam

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads an exam file and parses it into a Set. Markdown is the
// primary format; .yml, .yaml, and .json files use the structured spec
// schema instead.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read exam file: %w", err)
	}
	set, err := parse(data, path)
	if err != nil {
		return Set{}, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return set, nil
}

func parse(data []byte, path string) (Set, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		file, err := parseSpecJSON(data)
		if err != nil {
			return Set{}, err
		}
		return buildSet(file)
	case ".yml", ".yaml":
		file, err := parseSpecYAML(data)
		if err != nil {
			return Set{}, err
		}
		return buildSet(file)
	default:
		return Parse(data)
	}
}
