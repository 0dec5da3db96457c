package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"obsportable.dev/pkg/obsportable/internal/adapter"
	m "obsportable.dev/pkg/obsportable/internal/model"
)

// DestinationIndex tracks the names already taken inside an assets
// directory. It only grows during a run.
type DestinationIndex interface {
	Contains(name string) bool
	Add(name string)
}

// MemoryIndex is an in-memory DestinationIndex. Names compare
// case-insensitively because the bundle targets Windows filesystems.
type MemoryIndex struct {
	names map[string]struct{}
}

// NewMemoryIndex returns an index pre-populated with names.
func NewMemoryIndex(names ...string) *MemoryIndex {
	idx := &MemoryIndex{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		idx.Add(name)
	}

	return idx
}

// Contains reports whether name is taken.
func (idx *MemoryIndex) Contains(name string) bool {
	_, ok := idx.names[strings.ToLower(name)]
	return ok
}

// Add marks name as taken.
func (idx *MemoryIndex) Add(name string) {
	idx.names[strings.ToLower(name)] = struct{}{}
}

// Len returns the number of taken names.
func (idx *MemoryIndex) Len() int {
	return len(idx.names)
}

// LoadDirIndex seeds an index from the current contents of dir. A missing
// directory yields an empty index; a path that exists but is not a
// directory is reported as ErrDestinationUnwritable.
func LoadDirIndex(fs adapter.FSAdapter, dir m.Path) (*MemoryIndex, error) {
	info, err := fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewMemoryIndex(), nil
		}

		return nil, fmt.Errorf("%w: stat %s: %w", ErrDestinationUnwritable, dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDestinationUnwritable, dir)
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", ErrDestinationUnwritable, dir, err)
	}

	idx := NewMemoryIndex()
	for _, entry := range entries {
		idx.Add(entry.Name())
	}

	slog.Debug("loaded destination index", "dir", dir, "entries", idx.Len())

	return idx, nil
}

// CollisionSafeNamer hands out "{n}-{name}" file names inside one directory
// that no earlier file or reservation uses. Reservations are recorded in
// the index before returning, so concurrent callers never share a name.
type CollisionSafeNamer struct {
	mu    sync.Mutex
	dir   m.Path
	index DestinationIndex
}

// NewCollisionSafeNamer binds a namer to a directory and its index.
func NewCollisionSafeNamer(dir m.Path, index DestinationIndex) *CollisionSafeNamer {
	return &CollisionSafeNamer{dir: dir, index: index}
}

// Dir returns the directory names are reserved in.
func (n *CollisionSafeNamer) Dir() m.Path {
	return n.dir
}

// Reserve returns the full path of the first unused "{n}-{baseName}",
// counting from 1.
func (n *CollisionSafeNamer) Reserve(baseName string) m.Path {
	n.mu.Lock()
	defer n.mu.Unlock()

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%d-%s", counter, baseName)
		if n.index.Contains(candidate) {
			continue
		}

		n.index.Add(candidate)

		return m.Path(filepath.Join(string(n.dir), candidate))
	}
}
