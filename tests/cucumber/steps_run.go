//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"examsim/internal/cli"
)

// anExamWithDuplicates writes a three-question exam with one duplicate key.
func (s *featureState) anExamWithDuplicates() error {
	return s.writeExam("sample.md", `# Alpha

1. Shared question?
   1. Yes
   2. No

2. Alpha only?
   1. Yes
   2. No

## Beta

3. Shared question!
   1. Yes
   2. No
`)
}

// anExamWithOnlyHeadings writes a file with no question blocks.
func (s *featureState) anExamWithOnlyHeadings() error {
	return s.writeExam("sample.md", "# Heading\n\n## Another heading\n")
}

// noExamFileExists leaves the work directory empty.
func (s *featureState) noExamFileExists() error {
	return nil
}

// iRunCommand executes an examsim CLI invocation in-process.
func (s *featureState) iRunCommand(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 || fields[0] != "examsim" {
		return fmt.Errorf("unsupported command %q", command)
	}
	s.exitCode = cli.Run(fields[1:], &s.stdout, &s.stderr)
	return nil
}
