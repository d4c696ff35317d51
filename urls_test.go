package batchdl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadURLs(t *testing.T) {
	list := "https://x.com/a.bin\r\n\n   https://x.com/b.bin  \r\n\nhttps://x.com/c.bin"

	urls, err := ReadURLs(strings.NewReader(list), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.com/a.bin", "https://x.com/b.bin", "https://x.com/c.bin"}, urls)
}

func TestReadURLsEmpty(t *testing.T) {
	urls, err := ReadURLs(strings.NewReader("\n\n"), 0)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestReadURLsLimit(t *testing.T) {
	list := strings.Join(testURLs(4), "\n")

	_, err := ReadURLs(strings.NewReader(list), 3)
	assert.True(t, errors.Is(err, ErrTooManyURLs))

	urls, err := ReadURLs(strings.NewReader(list), 4)
	require.NoError(t, err)
	assert.Len(t, urls, 4)
}

func TestLoadURLs(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultListFile)
	require.NoError(t, os.WriteFile(path, []byte("https://x.com/a\nhttps://x.com/b\n"), 0644))

	urls, err := LoadURLs(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.com/a", "https://x.com/b"}, urls)

	_, err = LoadURLs(filepath.Join(t.TempDir(), "missing.txt"), 0)
	assert.Error(t, err)
}
