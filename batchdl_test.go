package batchdl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	server := newTestServer(t)
	dir := t.TempDir()

	report, err := Run(context.Background(), []string{
		server.URL + "/files/first.bin",
		server.URL + "/files/second.bin",
	}, dir, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded)

	data, err := os.ReadFile(filepath.Join(dir, "second.bin"))
	require.NoError(t, err)
	assert.Equal(t, fileBody("second.bin"), data)
}

func TestRunInputErrors(t *testing.T) {
	_, err := Run(context.Background(), testURLs(1), filepath.Join(t.TempDir(), "absent"), 2)
	assert.True(t, errors.Is(err, ErrDestination))

	_, err = Run(context.Background(), testURLs(MaxQueueItems+1), t.TempDir(), 2)
	assert.True(t, errors.Is(err, ErrQueueFull))

	_, err = Run(context.Background(), testURLs(1), t.TempDir(), 0)
	assert.True(t, errors.Is(err, ErrNoWorkers))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultWorkers, opts.Workers)
	assert.Equal(t, ".", opts.Dir)
	assert.Equal(t, MaxQueueItems, opts.Capacity)
}
