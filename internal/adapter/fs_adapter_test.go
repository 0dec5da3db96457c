package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

func TestLocalFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "scene.json")
	content := `{"name": "Untitled"}`
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalFSAdapter_Stat(t *testing.T) {
	adapter := NewLocalFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "clip.mp4")
	writeTestFile(t, path, "data")

	info, err := adapter.Stat(m.Path(path))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("Stat() reported file as directory")
	}

	dirInfo, err := adapter.Stat(m.Path(root))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("Stat() reported directory as file")
	}

	if _, err := adapter.Stat(m.Path(filepath.Join(root, "missing"))); !os.IsNotExist(err) {
		t.Fatalf("Stat() on missing path err = %v, want not-exist", err)
	}
}

func TestLocalFSAdapter_WriteFileReplacesAtomically(t *testing.T) {
	fs := afero.NewMemMapFs()
	adapter := NewFSAdapter(fs)

	if err := adapter.MkdirAll("/scenes"); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if err := adapter.WriteFile("/scenes/a.json", []byte("old"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := adapter.WriteFile("/scenes/a.json", []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := afero.ReadFile(fs, "/scenes/a.json")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "new" {
		t.Fatalf("WriteFile() content = %q, want %q", got, "new")
	}

	entries, err := adapter.ReadDir("/scenes")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFile() left %d entries behind, want 1", len(entries))
	}
}

func TestLocalFSAdapter_ReadDirSorted(t *testing.T) {
	fs := afero.NewMemMapFs()
	adapter := NewFSAdapter(fs)

	for _, name := range []string{"c.json", "a.json", "b.json"} {
		writeMemFile(t, fs, "/scenes/"+name, "{}")
	}

	entries, err := adapter.ReadDir("/scenes")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	want := []string{"a.json", "b.json", "c.json"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ReadDir() = %v, want %v", names, want)
		}
	}
}

func TestLocalFSAdapter_CopyFilePreservesContentAndMtime(t *testing.T) {
	adapter := NewLocalFSAdapter()

	src := filepath.Join(t.TempDir(), "clip.mp4")
	writeTestFile(t, src, "frames")

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(src, mtime, mtime); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	dst := filepath.Join(t.TempDir(), "assets", "1-clip.mp4")
	if err := adapter.CopyFile(m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "frames" {
		t.Fatalf("CopyFile() content = %q, want %q", got, "frames")
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if !info.ModTime().Equal(mtime) {
		t.Fatalf("CopyFile() mtime = %v, want %v", info.ModTime(), mtime)
	}

	if _, err := os.Stat(src); err != nil {
		t.Fatalf("CopyFile() touched source: %v", err)
	}
}

func TestLocalFSAdapter_CopyFileErrors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		adapter := NewFSAdapter(afero.NewMemMapFs())

		err := adapter.CopyFile("/nope/clip.mp4", "/assets/1-clip.mp4")
		if !errors.Is(err, ErrCopySource) {
			t.Fatalf("CopyFile() err = %v, want ErrCopySource", err)
		}

		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("CopyFile() err = %v, want not-exist cause", err)
		}
	})

	t.Run("destination parent is a file", func(t *testing.T) {
		adapter := NewLocalFSAdapter()

		root := t.TempDir()
		src := filepath.Join(root, "clip.mp4")
		writeTestFile(t, src, "frames")

		blocker := filepath.Join(root, "assets")
		writeTestFile(t, blocker, "not a dir")

		err := adapter.CopyFile(m.Path(src), m.Path(filepath.Join(blocker, "1-clip.mp4")))
		if !errors.Is(err, ErrCopyDestination) {
			t.Fatalf("CopyFile() err = %v, want ErrCopyDestination", err)
		}
	})
}

// unreadableFs opens files that fail on the first read.
type unreadableFs struct {
	afero.Fs
}

func (f unreadableFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}

	return unreadableFile{File: file}, nil
}

type unreadableFile struct {
	afero.File
}

func (unreadableFile) Read([]byte) (int, error) {
	return 0, errSharingViolation
}

var errSharingViolation = errors.New("sharing violation")

func TestLocalFSAdapter_CopyFileReadFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeMemFile(t, fs, "/media/clip.mp4", "frames")

	adapter := NewFSAdapter(unreadableFs{Fs: fs})

	err := adapter.CopyFile("/media/clip.mp4", "/assets/1-clip.mp4")
	if !errors.Is(err, ErrCopySource) {
		t.Fatalf("CopyFile() err = %v, want ErrCopySource", err)
	}

	if errors.Is(err, ErrCopyDestination) {
		t.Fatalf("CopyFile() err = %v, want no ErrCopyDestination", err)
	}

	if !errors.Is(err, errSharingViolation) {
		t.Fatalf("CopyFile() err = %v, want read cause", err)
	}

	if ok, _ := afero.Exists(fs, "/assets/1-clip.mp4"); ok {
		t.Fatalf("CopyFile() left a partial destination behind")
	}
}

func TestLocalFSAdapter_CopyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	adapter := NewFSAdapter(fs)

	writeMemFile(t, fs, "/install/bin/64bit/obs64.exe", "exe")
	writeMemFile(t, fs, "/install/data/locale.ini", "ini")
	writeMemFile(t, fs, "/portable/existing.txt", "keep")

	if err := adapter.CopyDir("/install", "/portable"); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	for _, path := range []string{
		"/portable/bin/64bit/obs64.exe",
		"/portable/data/locale.ini",
		"/portable/existing.txt",
	} {
		if ok, _ := afero.Exists(fs, path); !ok {
			t.Fatalf("CopyDir() missing %s", path)
		}
	}
}

func TestLocalFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalFSAdapter()

	joined := adapter.JoinPath("/tmp", "obs_portable", "assets")
	if string(joined) != filepath.Join("/tmp", "obs_portable", "assets") {
		t.Fatalf("JoinPath() = %s", joined)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func writeMemFile(t *testing.T, fs afero.Fs, path, contents string) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}

	if err := afero.WriteFile(fs, path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
