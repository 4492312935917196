package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"examsim/internal/exam"
	"examsim/internal/report"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		examPath, err := resolveExamPath(path, fs.Args())
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		set, err := exam.Load(examPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		report.Render(stdout, report.Build(filepath.Base(examPath), set))
		fmt.Fprintln(stdout, "Exam OK")
		return ExitOK
	}
}
