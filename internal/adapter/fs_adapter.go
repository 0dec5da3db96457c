// Package adapter contains infrastructure adapters for the portable builder.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

var (
	// ErrCopySource marks a CopyFile failure on the reading side.
	ErrCopySource = errors.New("read copy source")
	// ErrCopyDestination marks a CopyFile failure on the writing side.
	ErrCopyDestination = errors.New("write copy destination")
)

// FSAdapter abstracts filesystem operations the domain layer relies on when
// building a portable bundle. It hides direct `os` access so the workflow
// and the rewriter can be tested against an in-memory filesystem.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type FSAdapter interface {
	// Stat returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	Stat(path m.Path) (os.FileInfo, error)

	// ReadFile loads a file and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the file at path atomically: content is written to
	// a sibling temp file which is then renamed over the target.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// ReadDir lists a directory sorted by name.
	ReadDir(path m.Path) ([]os.FileInfo, error)

	// CopyFile copies one file, keeping its permission bits and
	// modification time. The source is never modified.
	CopyFile(src, dst m.Path) error

	// CopyDir recursively copies a directory tree, merging into dst when it
	// already exists.
	CopyDir(src, dst m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalFSAdapter implements FSAdapter on top of an afero filesystem.
type LocalFSAdapter struct {
	fs afero.Fs
}

// NewLocalFSAdapter constructs an adapter backed by the operating system.
func NewLocalFSAdapter() *LocalFSAdapter {
	return NewFSAdapter(afero.NewOsFs())
}

// NewFSAdapter constructs an adapter over the provided filesystem.
func NewFSAdapter(fs afero.Fs) *LocalFSAdapter {
	return &LocalFSAdapter{fs: fs}
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// ReadFile loads file contents.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return afero.ReadFile(a.fs, string(path))
}

// WriteFile writes content through a temp file and a rename.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	target := string(path)

	tmp, err := afero.TempFile(a.fs, filepath.Dir(target), "."+filepath.Base(target)+"-*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = a.fs.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = a.fs.Remove(tmpName)
		return err
	}

	if err := a.fs.Chmod(tmpName, perm); err != nil {
		_ = a.fs.Remove(tmpName)
		return err
	}

	if err := a.fs.Rename(tmpName, target); err != nil {
		_ = a.fs.Remove(tmpName)
		return err
	}

	return nil
}

// MkdirAll creates a directory tree.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return a.fs.MkdirAll(string(path), 0o750)
}

// ReadDir lists directory entries sorted by name.
func (a *LocalFSAdapter) ReadDir(path m.Path) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(a.fs, string(path))
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

// CopyFile copies a single file.
func (a *LocalFSAdapter) CopyFile(src, dst m.Path) error {
	info, err := a.fs.Stat(string(src))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopySource, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrCopySource, src)
	}

	return a.copyFile(string(src), string(dst), info)
}

// CopyDir recursively copies a directory tree.
func (a *LocalFSAdapter) CopyDir(src, dst m.Path) error {
	return afero.Walk(a.fs, string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return a.fs.MkdirAll(targetPath, info.Mode().Perm()|0o700)
		}

		return a.copyFile(path, targetPath, info)
	})
}

// copyFile copies file contents, then restores mode and modification time.
func (a *LocalFSAdapter) copyFile(src, dst string, info os.FileInfo) error {
	sourceFile, err := a.fs.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopySource, err)
	}

	defer func() { _ = sourceFile.Close() }()

	if err := a.fs.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyDestination, err)
	}

	destFile, err := a.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyDestination, err)
	}

	source := &sourceReader{r: sourceFile}

	if _, err := io.Copy(destFile, source); err != nil {
		_ = destFile.Close()
		_ = a.fs.Remove(dst)

		if source.err != nil {
			return fmt.Errorf("%w: %w", ErrCopySource, source.err)
		}

		return fmt.Errorf("%w: %w", ErrCopyDestination, err)
	}

	if err := destFile.Close(); err != nil {
		_ = a.fs.Remove(dst)
		return fmt.Errorf("%w: %w", ErrCopyDestination, err)
	}

	if err := a.fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyDestination, err)
	}

	if err := a.fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyDestination, err)
	}

	return nil
}

// sourceReader remembers the last read failure so copy errors can be
// attributed to the source.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = err
	}

	return n, err
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
