package media

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorage_StoreAndOpen(t *testing.T) {
	storage, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	path, err := storage.Store(context.Background(), strings.NewReader("factura"), "factura.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))
	assert.NotContains(t, path, "factura", "stored name must be opaque")

	f, err := storage.Open(context.Background(), path)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "factura", string(data))
}

func TestDiskStorage_Remove(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskStorage(dir)
	require.NoError(t, err)

	path, err := storage.Store(context.Background(), strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	require.NoError(t, storage.Remove(context.Background(), path))
	_, err = os.Stat(filepath.Join(dir, path))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is not an error.
	require.NoError(t, storage.Remove(context.Background(), path))
}

func TestDiskStorage_RejectsEscapingPaths(t *testing.T) {
	storage, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Open(context.Background(), "../outside.txt")
	require.Error(t, err)

	err = storage.Remove(context.Background(), "../../etc/passwd")
	require.Error(t, err)
}

func TestSanitizeExt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "foto.JPG", expected: ".jpg"},
		{name: "no extension", input: "README", expected: ""},
		{name: "weird characters", input: "a.p/df", expected: ""},
		{name: "too long", input: "a.verylongextension", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeExt(tt.input))
		})
	}
}
