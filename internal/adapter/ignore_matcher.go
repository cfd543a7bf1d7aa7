package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

// IgnoreFileName is the gitignore-style file read from the project root.
const IgnoreFileName = ".cairo-coverage-ignore"

// ErrInvalidIgnoreFile is returned when the ignore file contains a malformed pattern.
var ErrInvalidIgnoreFile = errors.New("invalid ignore file")

// IgnoreMatcher reports whether a source file is excluded from coverage.
type IgnoreMatcher interface {
	IsIgnored(path m.Path) bool
}

// IgnoreLoader builds the IgnoreMatcher of a project.
type IgnoreLoader interface {
	// LoadIgnoreMatcher returns nil when the project has no ignore file.
	LoadIgnoreMatcher(projectRoot m.Path) (IgnoreMatcher, error)
}

// LocalIgnoreLoader reads IgnoreFileName through an FSAdapter.
type LocalIgnoreLoader struct {
	fs FSAdapter
}

// NewLocalIgnoreLoader constructs a LocalIgnoreLoader.
func NewLocalIgnoreLoader(fs FSAdapter) *LocalIgnoreLoader {
	return &LocalIgnoreLoader{fs: fs}
}

// LoadIgnoreMatcher implements IgnoreLoader.
func (l *LocalIgnoreLoader) LoadIgnoreMatcher(projectRoot m.Path) (IgnoreMatcher, error) {
	ignorePath := m.Path(filepath.Join(string(projectRoot), IgnoreFileName))

	data, err := l.fs.ReadFile(ignorePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read %s: %w", ignorePath, err)
	}

	matcher, err := ParseIgnoreMatcher(projectRoot, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ignorePath, err)
	}

	slog.Debug("Loaded ignore file", "path", ignorePath)

	return matcher, nil
}

// GitIgnoreMatcher matches paths relative to a project root with gitignore semantics.
type GitIgnoreMatcher struct {
	root    string
	matcher gitignore.Matcher
}

// ParseIgnoreMatcher compiles gitignore-style content rooted at projectRoot.
func ParseIgnoreMatcher(projectRoot m.Path, content string) (*GitIgnoreMatcher, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	patterns := make([]gitignore.Pattern, 0, len(lines))

	for lineNo, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// fnmatch spells a negated bracket class `[!...]`, filepath.Match `[^...]`.
		line = strings.ReplaceAll(line, "[!", "[^")

		if err := validateIgnorePattern(line); err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %w", ErrInvalidIgnoreFile, lineNo+1, line, err)
		}

		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return &GitIgnoreMatcher{
		root:    filepath.Clean(string(projectRoot)),
		matcher: gitignore.NewMatcher(patterns),
	}, nil
}

// IsIgnored implements IgnoreMatcher. Paths outside the root are never ignored.
func (g *GitIgnoreMatcher) IsIgnored(path m.Path) bool {
	clean := string(path.WithoutVirtualSegments())

	rel, err := filepath.Rel(g.root, clean)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return g.matcher.Match(strings.Split(filepath.ToSlash(rel), "/"), false)
}

// validateIgnorePattern checks every path segment of the pattern for glob
// syntax errors, which the matcher would otherwise treat as a mismatch.
func validateIgnorePattern(line string) error {
	pattern := strings.TrimPrefix(strings.TrimRight(line, " "), "!")

	for _, segment := range strings.Split(pattern, "/") {
		if _, err := filepath.Match(segment, ""); err != nil {
			return err
		}
	}

	return nil
}
