// Package fixture loads screen snapshot regression fixtures: a "name.test"
// file holding the raw screen text next to a "name.result" file listing the
// URLs expected from it, one per line.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	inputExt  = ".test"
	resultExt = ".result"
)

// Case is one fixture.
type Case struct {
	// Name is the path of the fixture relative to the loaded root, without
	// extension and with forward slashes.
	Name  string
	Path  string
	Input string
	Want  []string
}

// Load collects every fixture under root, following symlinked directories.
// A fixture reachable through several paths is loaded once. Cases are sorted
// by name.
func Load(root string) ([]Case, error) {
	var cases []Case
	seen := make(map[string]bool)

	err := walkFiles(root, func(path string) error {
		if filepath.Ext(path) != inputExt {
			return nil
		}
		real, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		if seen[real] {
			return nil
		}
		seen[real] = true

		c, err := loadCase(root, path)
		if err != nil {
			return err
		}
		cases = append(cases, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading fixtures from %s: %w", root, err)
	}

	slices.SortFunc(cases, func(a, b Case) int { return strings.Compare(a.Name, b.Name) })
	return cases, nil
}

func loadCase(root, path string) (Case, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return Case{}, fmt.Errorf("reading %s: %w", path, err)
	}

	base := strings.TrimSuffix(path, inputExt)
	result, err := os.ReadFile(base + resultExt)
	if err != nil {
		return Case{}, fmt.Errorf("reading expected urls for %s: %w", path, err)
	}

	name, err := filepath.Rel(root, base)
	if err != nil {
		name = base
	}
	return Case{
		Name:  filepath.ToSlash(name),
		Path:  path,
		Input: string(input),
		Want:  splitLines(string(result)),
	}, nil
}

// splitLines splits on line breaks without producing a trailing empty entry.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
