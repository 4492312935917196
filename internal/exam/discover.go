package exam

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoExamFile indicates discovery found no candidate exam file.
var ErrNoExamFile = errors.New("no exam file found")

// examsDirName is the fallback directory searched after the working
// directory itself.
const examsDirName = "exams"

// Discover returns the first non-README markdown file in dir, then in its
// exams subdirectory. Entries are considered in lexical order.
func Discover(dir string) (string, error) {
	if path, ok := firstMarkdownFile(dir); ok {
		return path, nil
	}
	examsDir := filepath.Join(dir, examsDirName)
	if info, err := os.Stat(examsDir); err == nil && info.IsDir() {
		if path, ok := firstMarkdownFile(examsDir); ok {
			return path, nil
		}
	}
	return "", ErrNoExamFile
}

func firstMarkdownFile(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".md") {
			continue
		}
		if strings.EqualFold(name, "readme.md") {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), true
}
