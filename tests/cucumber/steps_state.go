//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for CLI feature tests.
type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an exam file with duplicate questions across sections$`, state.anExamWithDuplicates)
	ctx.Step(`^an exam file with only headings$`, state.anExamWithOnlyHeadings)
	ctx.Step(`^no exam file exists$`, state.noExamFileExists)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
}

// reset moves the scenario into a fresh working directory.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	s.previousWD = wd

	s.workDir, err = os.MkdirTemp("", "examsim-feature-*")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	if err := os.Chdir(s.workDir); err != nil {
		return fmt.Errorf("enter work dir: %w", err)
	}
	return nil
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

// writeExam writes an exam fixture into the scenario work directory.
func (s *featureState) writeExam(name, content string) error {
	path := filepath.Join(s.workDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write exam %s: %w", name, err)
	}
	return nil
}
