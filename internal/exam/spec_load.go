package exam

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseSpecJSON decodes a single-document JSON exam spec.
func parseSpecJSON(data []byte) (specFile, error) {
	var file specFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return specFile{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return specFile{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return specFile{}, fmt.Errorf("parse json: %w", err)
	}
	return file, nil
}

// parseSpecYAML decodes a single-document YAML exam spec.
func parseSpecYAML(data []byte) (specFile, error) {
	var file specFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return specFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return specFile{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return specFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	return file, nil
}

// buildSet validates a structured spec and converts it into a Set, folding
// duplicate keys exactly like the markdown path.
func buildSet(file specFile) (Set, error) {
	if err := validateSpec(file); err != nil {
		return Set{}, err
	}

	var set Set
	byKey := map[string]int{}
	for _, entry := range file.Questions {
		section := strings.TrimSpace(entry.Section)
		if section == "" {
			section = DefaultSection
		}
		text := strings.TrimSpace(entry.Question)
		options := make([]string, 0, len(entry.Options))
		for _, option := range entry.Options {
			options = append(options, strings.TrimSpace(option))
		}
		valid := entry.Valid
		if valid < 1 {
			valid = 1
		}
		appendQuestion(&set, byKey, Question{
			Text:        text,
			Options:     options,
			ValidCount:  valid,
			AIGenerated: entry.AIGenerated,
			Section:     section,
			Key:         DedupKey(text),
			Duplicates:  1,
			Sources:     []string{section},
		})
	}
	if set.Empty() {
		return Set{}, ErrNoQuestions
	}
	return set, nil
}
