package exam

import (
	"fmt"
	"strings"
)

// Issue captures a single validation problem in a structured exam spec.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("exam spec validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// validateSpec checks a structured exam spec field by field.
func validateSpec(file specFile) error {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	if len(file.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	for i, entry := range file.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(entry.Question) == "" {
			collector.add(prefix+".question", "is required")
		}
		if len(entry.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		}
		for optionIndex, option := range entry.Options {
			if strings.TrimSpace(option) == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}
		if entry.Valid < 0 {
			collector.add(prefix+".valid", "must not be negative")
		} else if entry.Valid > len(entry.Options) {
			collector.add(prefix+".valid", fmt.Sprintf("exceeds option count %d", len(entry.Options)))
		}
	}
	return collector.result()
}
