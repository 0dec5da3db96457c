package domain

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

func TestCollisionSafeNamer_Reserve(t *testing.T) {
	dir := m.Path("/bundle/assets")

	t.Run("counts from one", func(t *testing.T) {
		namer := NewCollisionSafeNamer(dir, NewMemoryIndex())

		assert.Equal(t, m.Path(filepath.Join("/bundle/assets", "1-clip.mp4")), namer.Reserve("clip.mp4"))
		assert.Equal(t, m.Path(filepath.Join("/bundle/assets", "2-clip.mp4")), namer.Reserve("clip.mp4"))
		assert.Equal(t, m.Path(filepath.Join("/bundle/assets", "1-logo.png")), namer.Reserve("logo.png"))
	})

	t.Run("skips names already on disk", func(t *testing.T) {
		namer := NewCollisionSafeNamer(dir, NewMemoryIndex("1-clip.mp4", "2-clip.mp4", "4-clip.mp4"))

		assert.Equal(t, "3-clip.mp4", filepath.Base(string(namer.Reserve("clip.mp4"))))
		assert.Equal(t, "5-clip.mp4", filepath.Base(string(namer.Reserve("clip.mp4"))))
	})

	t.Run("compares names case-insensitively", func(t *testing.T) {
		namer := NewCollisionSafeNamer(dir, NewMemoryIndex("1-CLIP.MP4"))

		assert.Equal(t, "2-clip.mp4", filepath.Base(string(namer.Reserve("clip.mp4"))))
	})

	t.Run("records reservations in the index", func(t *testing.T) {
		index := NewMemoryIndex()
		namer := NewCollisionSafeNamer(dir, index)

		namer.Reserve("clip.mp4")

		assert.True(t, index.Contains("1-clip.mp4"))
		assert.Equal(t, 1, index.Len())
		assert.Equal(t, dir, namer.Dir())
	})
}

func TestCollisionSafeNamer_ConcurrentReservations(t *testing.T) {
	const workers = 64

	namer := NewCollisionSafeNamer(m.Path("/bundle/assets"), NewMemoryIndex("1-clip.mp4"))

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		names = make(map[m.Path]struct{}, workers)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			name := namer.Reserve("clip.mp4")

			mu.Lock()
			names[name] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()

	require.Len(t, names, workers)

	for i := 2; i <= workers+1; i++ {
		assert.Contains(t, names, m.Path(filepath.Join("/bundle/assets", fmt.Sprintf("%d-clip.mp4", i))))
	}
}

func TestLoadDirIndex(t *testing.T) {
	_, fsAdapter := newMemFS(t,
		map[string]string{
			"/bundle/assets/1-clip.mp4": "video",
			"/bundle/assets/1-logo.png": "image",
			"/bundle/file":              "not a dir",
		},
	)

	t.Run("missing directory is empty", func(t *testing.T) {
		index, err := LoadDirIndex(fsAdapter, m.Path("/bundle/missing"))
		require.NoError(t, err)
		assert.Equal(t, 0, index.Len())
	})

	t.Run("existing entries are taken", func(t *testing.T) {
		index, err := LoadDirIndex(fsAdapter, m.Path("/bundle/assets"))
		require.NoError(t, err)
		assert.Equal(t, 2, index.Len())
		assert.True(t, index.Contains("1-clip.mp4"))
		assert.True(t, index.Contains("1-LOGO.png"))
	})

	t.Run("file in place of directory", func(t *testing.T) {
		_, err := LoadDirIndex(fsAdapter, m.Path("/bundle/file"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDestinationUnwritable)
	})
}
