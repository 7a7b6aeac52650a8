// Package adapter contains the infrastructure adapters of the lox CLI.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/lox/internal/model"
)

// LoxFileExt is the extension of the files collected by Get.
const LoxFileExt = ".lox"

// ErrInvalidEncoding is returned by ReadSource for files that are not valid
// UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// SourceFSAdapter hides the file system from the workflow.
type SourceFSAdapter interface {
	// Get collects the lox files under roots. A root ending in "/..." is
	// scanned recursively; paths matching one of the exclude regexes are
	// dropped.
	Get(roots []m.Path, exclude []string) ([]m.Path, error)

	// Walk traverses root. When recursive is false only the files directly
	// inside root are visited.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadSource loads a file as a lox source identified by its path.
	ReadSource(path m.Path) (*m.Source, error)

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape of filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get returns absolute, deduplicated lox file paths in discovery order. A
// root naming a file is returned as is, whatever its extension.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})
	paths := []m.Path{}

	add := func(path string) {
		p := m.Path(path)
		if _, ok := seen[p]; ok || excluded(path, patterns) {
			return
		}

		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath)
			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || filepath.Ext(path) != LoxFileExt {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// ReadSource reads path and checks that it decodes as UTF-8.
func (a *LocalSourceFSAdapter) ReadSource(path m.Path) (*m.Source, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("decode %s: %w", path, ErrInvalidEncoding)
	}

	return m.NewSource(string(path), string(content)), nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func excluded(path string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

// parseRootPath strips the "/..." suffix asking for a recursive scan.
func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if trimmed, ok := strings.CutSuffix(rootStr, "/..."); ok {
		return trimmed, true
	}

	return rootStr, false
}
