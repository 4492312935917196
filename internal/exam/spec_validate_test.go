package exam

import (
	"errors"
	"strings"
	"testing"
)

// TestValidateSpecReportsIssues verifies per-field validation messages.
func TestValidateSpecReportsIssues(t *testing.T) {
	file := specFile{
		Version: 1,
		Questions: []specQuestion{
			{Question: "", Options: []string{"a"}},
			{Question: "Q", Options: nil},
			{Question: "Q2", Options: []string{"a", "b"}, Valid: 3},
		},
	}
	err := validateSpec(file)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	message := err.Error()
	for _, want := range []string{
		"questions[0].question: is required",
		"questions[1].options: must include at least one entry",
		"questions[2].valid: exceeds option count 2",
	} {
		if !strings.Contains(message, want) {
			t.Fatalf("expected %q in %q", want, message)
		}
	}
}

// TestValidateSpecVersion verifies version checking.
func TestValidateSpecVersion(t *testing.T) {
	err := validateSpec(specFile{Questions: []specQuestion{{Question: "Q", Options: []string{"a"}}}})
	if err == nil || !strings.Contains(err.Error(), "version: is required") {
		t.Fatalf("expected missing version error, got %v", err)
	}
	err = validateSpec(specFile{Version: 2, Questions: []specQuestion{{Question: "Q", Options: []string{"a"}}}})
	if err == nil || !strings.Contains(err.Error(), "unsupported version 2") {
		t.Fatalf("expected unsupported version error, got %v", err)
	}
}

// TestValidateSpecOK verifies a clean spec passes.
func TestValidateSpecOK(t *testing.T) {
	err := validateSpec(specFile{
		Version:   1,
		Questions: []specQuestion{{Question: "Q", Options: []string{"a", "b"}, Valid: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
