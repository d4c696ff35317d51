// Package batchdl downloads a list of URLs into a directory with a fixed
// pool of workers, one file per URL.
package batchdl

import (
	"context"
)

const (
	DefaultWorkers  = 5
	MaxQueueItems   = 1000
	DefaultListFile = "downloads.txt"
)

// Options configures a Manager.
type Options struct {
	// Workers is the fixed size of the pool. It is not derived from the
	// number of URLs; values below 1 abort the run with ErrNoWorkers.
	Workers int

	// Dir is an existing directory receiving the files. Default: "."
	Dir string

	// Capacity bounds the number of URLs of a run. Default: MaxQueueItems
	Capacity int

	// Transport performs the HTTP requests. Default: NewTransport(DefaultTransportOptions())
	Transport Transport

	// Console receives progress and outcome lines. Default: stdout/stderr
	Console *Console

	// NoProgress suppresses the per-fetch percentage line.
	NoProgress bool

	// OnOutcome, when set, is called by the worker after each outcome has
	// been reported. It must be safe for concurrent use.
	OnOutcome func(Outcome)
}

// DefaultOptions returns options with DefaultWorkers workers writing to the
// current directory.
func DefaultOptions() Options {
	return Options{
		Workers:  DefaultWorkers,
		Dir:      ".",
		Capacity: MaxQueueItems,
	}
}

// Run downloads urls into dir with the given number of workers and returns
// once every worker has terminated. Failed URLs are counted in the Report;
// the error is only set when the run itself could not complete.
func Run(ctx context.Context, urls []string, dir string, workers int) (*Report, error) {
	opts := DefaultOptions()
	opts.Dir = dir
	opts.Workers = workers
	return NewManager(opts).Run(ctx, urls)
}
