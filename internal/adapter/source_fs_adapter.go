// Package adapter contains the filesystem adapter used by the rewrite workflow.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	m "github.com/mouse-blink/stdscope/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a project. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects files under root/dir for every dir whose extension is one
	// of exts. Missing directories are skipped. Results are de-duplicated by
	// absolute path and sorted within each directory.
	Get(root m.Path, dirs []string, exts []string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the file at path with content, keeping its mode.
	WriteFile(path m.Path, content []byte) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks each target directory and collects files with a matching extension.
func (a *LocalSourceFSAdapter) Get(root m.Path, dirs []string, exts []string) ([]m.Path, error) {
	wanted := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		wanted[ext] = struct{}{}
	}

	seen := make(map[string]struct{})

	var paths []m.Path

	for _, dir := range dirs {
		base := filepath.Join(string(root), dir)

		info, err := a.FileInfo(m.Path(base))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("target directory error: %w", err)
		}

		if !info.IsDir() {
			continue
		}

		var found []m.Path

		err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			if _, ok := wanted[filepath.Ext(path)]; !ok {
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			if _, exists := seen[abs]; exists {
				return nil
			}

			seen[abs] = struct{}{}
			found = append(found, m.Path(path))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", base, err)
		}

		sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
		paths = append(paths, found...)
	}

	return paths, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a temp file next to path and renames it over
// the original, so readers never observe a half-written file.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) (err error) {
	target := string(path)

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	if err = os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return err
	}

	return os.Rename(tmpName, target)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
