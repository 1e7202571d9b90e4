package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File pairs the absolute path used for reading with the root-relative path
// used for slug derivation.
type File struct {
	AbsPath  string
	RelPath  string
	Modified time.Time
}

// DefaultExcludes are directory names never descended into, on top of the
// hidden-directory convention.
var DefaultExcludes = []string{"node_modules", "vendor", "dist", "build", "out"}

// Scanner discovers document files under a root directory.
type Scanner struct {
	extensions map[string]bool
	excludes   map[string]bool
}

// New creates a scanner matching the given extensions (lower-cased, with
// leading dot) and skipping the given directory names. Nil slices select the
// defaults: .md/.markdown files, DefaultExcludes directories.
func New(extensions, excludes []string) *Scanner {
	if len(extensions) == 0 {
		extensions = []string{".md", ".markdown"}
	}
	if excludes == nil {
		excludes = DefaultExcludes
	}
	s := &Scanner{
		extensions: make(map[string]bool, len(extensions)),
		excludes:   make(map[string]bool, len(excludes)),
	}
	for _, ext := range extensions {
		s.extensions[strings.ToLower(ext)] = true
	}
	for _, name := range excludes {
		s.excludes[name] = true
	}
	return s
}

// Scan walks root and returns every matching file in lexical order. Hidden
// and excluded directories are pruned. Unreadable subdirectories are skipped;
// unreadable files surface later as read failures.
func (s *Scanner) Scan(root string) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", root)
	}

	files := []File{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || s.excludes[name] {
				return fs.SkipDir
			}
			return nil
		}
		if !s.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, File{
			AbsPath:  path,
			RelPath:  rel,
			Modified: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return files, nil
}
