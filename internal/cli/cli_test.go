package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeExam writes a small markdown exam and returns its path.
func writeExam(t *testing.T) string {
	t.Helper()
	content := `# Sample

1. First question?
   1. Yes
   2. No

2. First question!
   1. Yes
   2. No
`
	path := filepath.Join(t.TempDir(), "sample.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write exam: %v", err)
	}
	return path
}

// TestRunHelp verifies the top-level usage output.
func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"help"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, want := range []string{"take", "validate"} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("expected %q in usage:\n%s", want, stdout.String())
		}
	}
}

// TestRunDefaultsToTake verifies bare arguments reach the take command.
func TestRunDefaultsToTake(t *testing.T) {
	withTerminal(t, false)
	path := writeExam(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-p", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Questions: 2 (1 unique)") {
		t.Fatalf("expected summary output:\n%s", stdout.String())
	}
}

// TestRunPositionalPath verifies a positional exam path also works.
func TestRunPositionalPath(t *testing.T) {
	withTerminal(t, false)
	path := writeExam(t)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"take", "--ui", "plain", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "sample.md") {
		t.Fatalf("expected exam name in output:\n%s", stdout.String())
	}
}

// TestRunUnknownFlag verifies flag errors exit with usage status.
func TestRunUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"take", "--bogus"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}
