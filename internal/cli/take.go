package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"examsim/internal/exam"
	"examsim/internal/report"
	"examsim/internal/ui/quiz"
)

// runQuizUI is a test seam for starting the interactive UI.
var runQuizUI = quiz.Run

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		var path string
		fs.StringVar(&path, "path", "", "Path to the exam file")
		fs.StringVar(&path, "p", "", "Path to the exam file (shorthand)")
		randomize := fs.Bool("randomize", false, "Start with randomized question order")
		nonAI := fs.Bool("non-ai", false, "Start with AI-generated questions filtered out")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live, or plain")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		set, examPath, loadErr := loadExam(path, fs.Args())

		if !decision.useLive {
			if loadErr != nil {
				fmt.Fprintf(stderr, "Failed to load exam: %v\n", loadErr)
				return ExitError
			}
			report.Render(stdout, report.Build(filepath.Base(examPath), set))
			fmt.Fprintln(stdout, "Interactive session requires a terminal; summary printed instead.")
			return ExitOK
		}

		opts := quiz.Options{
			ExamName:    examTitle(examPath),
			Randomized:  *randomize,
			FilterNonAI: *nonAI,
			NoColor:     *noColor,
		}
		if loadErr != nil {
			// The UI opens with an empty set and shows the error, matching
			// the original dialog-and-keep-running behavior.
			opts.LoadError = loadErr.Error()
		}
		if err := runQuizUI(set, opts, stdout); err != nil {
			fmt.Fprintf(stderr, "UI error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadExam resolves the exam path and loads it, returning a zero set when
// anything fails.
func loadExam(flagPath string, args []string) (exam.Set, string, error) {
	examPath, err := resolveExamPath(flagPath, args)
	if err != nil {
		return exam.Set{}, "", err
	}
	set, err := exam.Load(examPath)
	if err != nil {
		return exam.Set{}, examPath, err
	}
	return set, examPath, nil
}

// examTitle renders the window title for an exam path, spelling out the
// full path only when the file lives outside the working directory.
func examTitle(examPath string) string {
	if examPath == "" {
		return ""
	}
	base := filepath.Base(examPath)
	wd, err := os.Getwd()
	if err != nil {
		return base
	}
	if filepath.Dir(examPath) == wd {
		return base
	}
	return fmt.Sprintf("%s (%s)", base, examPath)
}
