package batchdl

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// FileDownloader fetches one URL into one file.
type FileDownloader struct {
	Transport Transport
	Console   *Console

	// Progress enables the per-fetch percentage line on Console.
	Progress bool

	now func() time.Time
}

// NewFileDownloader creates a FileDownloader; progress enables percentage lines.
func NewFileDownloader(transport Transport, console *Console, progress bool) *FileDownloader {
	return &FileDownloader{
		Transport: transport,
		Console:   console,
		Progress:  progress,
		now:       time.Now,
	}
}

// Fetch downloads url into destPath. The file is created (or truncated)
// first and closed on every path; on failure whatever was written stays on
// disk. Fetch never retries.
func (d *FileDownloader) Fetch(ctx context.Context, url string, destPath string) (out Outcome) {
	out = Outcome{
		URL:  url,
		Name: filepath.Base(destPath),
		Path: destPath,
	}

	file, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		out.Err = &FileCreateError{Path: destPath, Err: err}
		return out
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && out.Err == nil {
			out.Err = errors.Wrapf(cerr, "close file %s", destPath)
			out.At = time.Time{}
		}
	}()

	var hook ProgressFunc
	if d.Progress && d.Console != nil {
		hook = NewProgressReporter(d.Console).Report
	}

	sink := &countingWriter{w: file}
	err = d.Transport.Perform(ctx, url, sink, hook)
	out.Bytes = sink.n
	if err != nil {
		out.Err = err
		return out
	}

	out.At = d.now()
	return out
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
