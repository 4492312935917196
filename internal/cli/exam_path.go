package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"examsim/internal/exam"
)

// resolveExamPath picks the exam file from a flag, a positional argument,
// or directory discovery, in that order.
func resolveExamPath(flagPath string, args []string) (string, error) {
	path := strings.TrimSpace(flagPath)
	if path == "" && len(args) > 0 {
		path = strings.TrimSpace(args[0])
	}
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve exam path: %w", err)
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return exam.Discover(wd)
}
