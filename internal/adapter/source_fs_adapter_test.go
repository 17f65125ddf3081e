package adapter

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/stdscope/internal/model"
)

var testExts = []string{".hpp", ".h", ".cpp", ".cc", ".cxx"}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	t.Run("collects matching files from target dirs only", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdirAll(t, filepath.Join(root, "include", "db"))
		mustMkdirAll(t, filepath.Join(root, "src"))
		mustMkdirAll(t, filepath.Join(root, "vendor"))

		writeTestFile(t, filepath.Join(root, "include", "db", "Types.hpp"), "#pragma once\n")
		writeTestFile(t, filepath.Join(root, "src", "main.cpp"), "int main() {}\n")
		writeTestFile(t, filepath.Join(root, "src", "a.cc"), "\n")
		writeTestFile(t, filepath.Join(root, "src", "notes.txt"), "skip\n")
		writeTestFile(t, filepath.Join(root, "vendor", "lib.cpp"), "skip\n")

		got, err := adapter.Get(m.Path(root), []string{"include", "src", "missing"}, testExts)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "include", "db", "Types.hpp")),
			m.Path(filepath.Join(root, "src", "a.cc")),
			m.Path(filepath.Join(root, "src", "main.cpp")),
		}, got)
	})

	t.Run("de-duplicates overlapping dirs", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdirAll(t, filepath.Join(root, "src", "nested"))
		writeTestFile(t, filepath.Join(root, "src", "nested", "x.h"), "\n")

		got, err := adapter.Get(m.Path(root), []string{"src", "src/nested"}, testExts)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("target that is a file is ignored", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "src"), "not a dir\n")

		got, err := adapter.Get(m.Path(root), []string{"src"}, testExts)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no target dirs", func(t *testing.T) {
		got, err := NewLocalSourceFSAdapter().Get(m.Path(t.TempDir()), nil, testExts)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.cpp")
	content := "#include <string>\n" + "int main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))

	_, err = adapter.ReadFile(m.Path(filepath.Join(root, "missing.cpp")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	t.Run("replaces content and keeps mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file modes are not preserved on windows")
		}

		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		path := filepath.Join(root, "a.hpp")
		writeTestFile(t, path, "old\n")
		require.NoError(t, os.Chmod(path, 0o600))

		require.NoError(t, adapter.WriteFile(m.Path(path), []byte("new\n")))

		assert.Equal(t, "new\n", string(readFileBytes(t, path)))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file left behind")
	})

	t.Run("missing target fails", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		err := adapter.WriteFile(m.Path(filepath.Join(t.TempDir(), "missing.cpp")), []byte("x"))
		assert.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()

	info, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = adapter.FileInfo(m.Path(filepath.Join(root, "missing")))
	assert.True(t, os.IsNotExist(err))
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}
