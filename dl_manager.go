package batchdl

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Manager runs a fixed pool of workers over a Queue.
// One Manager may run many times; its Namer lives as long as it does, so
// fallback names stay unique across runs.
type Manager struct {
	opts       Options
	namer      *Namer
	downloader *FileDownloader
}

// NewManager creates a Manager, filling unset Options fields with defaults.
func NewManager(opts Options) *Manager {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Capacity <= 0 {
		opts.Capacity = MaxQueueItems
	}
	if opts.Transport == nil {
		opts.Transport = NewTransport(DefaultTransportOptions())
	}
	if opts.Console == nil {
		opts.Console = NewConsole(nil, nil)
	}

	return &Manager{
		opts:       opts,
		namer:      NewNamer(),
		downloader: NewFileDownloader(opts.Transport, opts.Console, !opts.NoProgress),
	}
}

// Run seeds a queue with urls and drains it.
func (m *Manager) Run(ctx context.Context, urls []string) (*Report, error) {
	if !isDir(m.opts.Dir) {
		return nil, errors.Wrapf(ErrDestination, "%s", m.opts.Dir)
	}

	q, err := NewQueue(urls, m.opts.Capacity)
	if err != nil {
		return nil, err
	}
	return m.Drain(ctx, q)
}

// Drain spawns the workers over q and blocks until all of them have
// terminated. Per-URL failures end up in the Report. A run-level failure
// (a worker that could not be spawned or joined) releases q and is
// returned together with what was reported so far.
func (m *Manager) Drain(ctx context.Context, q *Queue) (*Report, error) {
	runID := uuid.NewString()
	logger := NewLogger("run "+runID[:8], 2)

	workers := m.opts.Workers
	if workers < 1 {
		q.Release()
		return nil, ErrNoWorkers
	}

	rc := &runContext{
		queue:      q,
		namer:      m.namer,
		downloader: m.downloader,
		console:    m.opts.Console,
		dir:        m.opts.Dir,
		onOutcome:  m.opts.OnOutcome,
		log:        logger,
	}
	logger.Trace("starting %d workers for %d urls", workers, q.Remaining())

	g, gctx := errgroup.WithContext(ctx)
	tallies := make([]Report, workers)

	var spawnErr error
	for i := 0; i < workers; i++ {
		if err := gctx.Err(); err != nil {
			spawnErr = &SpawnError{Started: i, Wanted: workers, Err: err}
			break
		}
		w := newWorker(i+1, rc)
		tally := &tallies[i]
		g.Go(func() error {
			return w.run(gctx, tally)
		})
	}
	joinErr := g.Wait()

	report := &Report{}
	for i := range tallies {
		report.merge(&tallies[i])
	}

	err := spawnErr
	if err == nil {
		err = joinErr
	}
	if err != nil {
		q.Release()
		logger.Error("run aborted: %v", err)
		return report, err
	}

	logger.Trace("finished: %s", report)
	return report, nil
}

// runContext is what every worker of one run shares.
type runContext struct {
	queue      *Queue
	namer      *Namer
	downloader *FileDownloader
	console    *Console
	dir        string
	onOutcome  func(Outcome)
	log        Logger
}

// Worker owns nothing across iterations; all shared state is in its run context.
type Worker struct {
	id int
	rc *runContext
}

func newWorker(id int, rc *runContext) *Worker {
	return &Worker{id: id, rc: rc}
}

// run claims and fetches until the queue is drained. A failed fetch only
// ends its own iteration.
func (w *Worker) run(ctx context.Context, tally *Report) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &JoinError{Worker: w.id, Err: errors.Errorf("panic: %v", r)}
		}
	}()

	rc := w.rc
	rc.log.Trace("worker %d started", w.id)
	for {
		if cerr := ctx.Err(); cerr != nil {
			return &JoinError{Worker: w.id, Err: cerr}
		}

		url, ok := rc.queue.Claim()
		if !ok {
			rc.log.Trace("worker %d terminated, queue drained", w.id)
			return nil
		}

		name := rc.namer.FileName(url)
		out := rc.downloader.Fetch(ctx, url, filepath.Join(rc.dir, name))

		rc.console.Report(out)
		tally.add(out)
		if rc.onOutcome != nil {
			rc.onOutcome(out)
		}
	}
}
