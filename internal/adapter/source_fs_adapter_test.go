package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/lox/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.lox"), "1 + 2\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.lox"), "3\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.NotContains(t, visited, filepath.Join(nestedDir, "child.lox"))
		assert.Contains(t, visited, filepath.Join(root, "main.lox"))
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.lox")
		writeTestFile(t, child, "3\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.Contains(t, visited, child)
	})
}

func TestLocalSourceFSAdapter_ReadSource(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	t.Run("reads content with the path as id", func(t *testing.T) {
		path := filepath.Join(root, "ok.lox")
		writeTestFile(t, path, "\"héllo\" + \"!\"\n")

		src, err := adapter.ReadSource(m.Path(path))
		require.NoError(t, err)

		assert.Equal(t, path, src.ID())
		assert.Equal(t, "\"héllo\" + \"!\"\n", src.Content())
		assert.Equal(t, 2, src.LineCount())
	})

	t.Run("rejects invalid utf-8", func(t *testing.T) {
		path := filepath.Join(root, "bad.lox")
		require.NoError(t, os.WriteFile(path, []byte{'1', 0xff, 0xfe}, 0o600))

		_, err := adapter.ReadSource(m.Path(path))
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.ReadSource(m.Path(filepath.Join(root, "missing.lox")))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.lox")
	content := []byte("1 + 2 * 3\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256(content)), hash)

	_, err = adapter.HashFile(m.Path(filepath.Join(root, "missing.lox")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.lox")
	writeTestFile(t, path, "nil\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	layout := func(t *testing.T) (root, main, child string) {
		t.Helper()

		root = t.TempDir()
		main = filepath.Join(root, "main.lox")
		writeTestFile(t, main, "1\n")
		writeTestFile(t, filepath.Join(root, "notes.txt"), "not lox\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child = filepath.Join(nestedDir, "child.lox")
		writeTestFile(t, child, "2\n")

		return root, main, child
	}

	t.Run("dot selects current directory non-recursive", func(t *testing.T) {
		root, main, _ := layout(t)
		chdir(t, root)

		paths, err := adapter.Get([]m.Path{"."}, nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(main)}, paths)
	})

	t.Run("go style recursive path includes nested", func(t *testing.T) {
		root, main, child := layout(t)
		chdir(t, root)

		paths, err := adapter.Get([]m.Path{"./..."}, nil)
		require.NoError(t, err)

		assert.ElementsMatch(t, []m.Path{m.Path(main), m.Path(child)}, paths)
	})

	t.Run("explicit nested path", func(t *testing.T) {
		root, _, child := layout(t)
		chdir(t, root)

		paths, err := adapter.Get([]m.Path{"./nested/..."}, nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(child)}, paths)
	})

	t.Run("tilde expands home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		path := filepath.Join(home, "home.lox")
		writeTestFile(t, path, "true\n")

		paths, err := adapter.Get([]m.Path{"~"}, nil)
		require.NoError(t, err)

		assert.Contains(t, paths, m.Path(path))
	})

	t.Run("file root is kept whatever its extension", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "script.txt")
		writeTestFile(t, path, "1\n")

		paths, err := adapter.Get([]m.Path{m.Path(path)}, nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(path)}, paths)
	})

	t.Run("duplicate roots are de-duplicated", func(t *testing.T) {
		root, main, child := layout(t)

		paths, err := adapter.Get([]m.Path{m.Path(root + "/..."), m.Path(main), m.Path(root)}, nil)
		require.NoError(t, err)

		assert.Len(t, paths, 2)
		assert.ElementsMatch(t, []m.Path{m.Path(main), m.Path(child)}, paths)
	})

	t.Run("exclude patterns drop matches", func(t *testing.T) {
		root, main, _ := layout(t)

		paths, err := adapter.Get([]m.Path{m.Path(root + "/...")}, []string{`nested/`})
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(main)}, paths)
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		root, _, _ := layout(t)

		_, err := adapter.Get([]m.Path{m.Path(root)}, []string{"("})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid exclude pattern")
	})

	t.Run("returns error for missing root", func(t *testing.T) {
		_, err := adapter.Get([]m.Path{"/path/does/not/exist"}, nil)
		assert.Error(t, err)
	})

	t.Run("no roots", func(t *testing.T) {
		paths, err := adapter.Get(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}

func TestParseRootPath(t *testing.T) {
	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{in: "./...", path: ".", recursive: true},
		{in: "...", path: ".", recursive: true},
		{in: "./pkg/...", path: "./pkg", recursive: true},
		{in: "./pkg", path: "./pkg", recursive: false},
		{in: "a.lox", path: "a.lox", recursive: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, recursive := parseRootPath(tt.in)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.recursive, recursive)
		})
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(path, 0o755))
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
