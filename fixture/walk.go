package fixture

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// walkFiles calls fn for every regular file under root, following symbolic
// links to directories. Directories already reached through another path are
// not entered again, which also breaks symlink loops. Paths handed to fn keep
// the symlink-based prefix they were reached through.
func walkFiles(root string, fn func(path string) error) error {
	visited := make(map[string]bool)
	return walk(root, visited, fn)
}

func walk(root string, visited map[string]bool, fn func(path string) error) error {
	real, err := filepath.EvalSymlinks(root)
	if err != nil {
		return err
	}
	if visited[real] {
		return nil
	}
	visited[real] = true

	return filepath.WalkDir(real, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		display := path
		if rel, relErr := filepath.Rel(real, path); relErr == nil {
			display = filepath.Join(root, rel)
		}

		switch {
		case d.IsDir():
			if path == real {
				return nil
			}
			if visited[path] {
				return filepath.SkipDir
			}
			visited[path] = true
			return nil
		case d.Type()&os.ModeSymlink != 0:
			info, err := os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				// dangling link
				return nil
			}
			if err != nil {
				return err
			}
			if info.IsDir() {
				return walk(display, visited, fn)
			}
			return fn(display)
		case d.Type().IsRegular():
			return fn(display)
		}
		return nil
	})
}
