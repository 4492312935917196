package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidateSummary verifies validate prints the exam summary.
func TestValidateSummary(t *testing.T) {
	path := writeExam(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-p", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	for _, want := range []string{"Exam: sample.md", "Questions: 2 (1 unique)", "Duplicate groups: 1", "Exam OK"} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, stdout.String())
		}
	}
}

// TestValidateMissingFile verifies a load failure exits non-zero.
func TestValidateMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-p", "/nonexistent/exam.md"}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Validation failed") {
		t.Fatalf("expected failure message:\n%s", stderr.String())
	}
}

// TestValidateNoQuestions verifies a parsable but empty exam fails
// validation.
func TestValidateNoQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.md")
	if err := os.WriteFile(path, []byte("# Heading only\n"), 0o644); err != nil {
		t.Fatalf("write exam: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-p", path}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no valid questions found") {
		t.Fatalf("expected sentinel message:\n%s", stderr.String())
	}
}

// TestValidateYAMLSpecErrors verifies structured spec issues reach the
// user with field paths.
func TestValidateYAMLSpecErrors(t *testing.T) {
	payload := `version: 1
questions:
  - question: ""
    options: []
`
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "-p", path}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "questions[0].question") {
		t.Fatalf("expected field path in error:\n%s", stderr.String())
	}
}
