package batchdl

import (
	"fmt"
	"time"
)

// Outcome is the result of one fetch. It is reported once and then dropped.
type Outcome struct {
	URL   string
	Name  string
	Path  string
	Bytes int64
	At    time.Time // completion time, zero on failure
	Err   error
}

// OK reports whether the fetch succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Report summarizes a run. Partial failure is a normal report, not an error.
type Report struct {
	Attempted int
	Succeeded int
	Failures  []Outcome
}

// Failed returns the number of URLs that could not be downloaded.
func (r *Report) Failed() int {
	return len(r.Failures)
}

// OK reports whether every attempted URL was downloaded.
func (r *Report) OK() bool {
	return r.Failed() == 0
}

func (r *Report) String() string {
	return fmt.Sprintf("%d attempted, %d downloaded, %d failed", r.Attempted, r.Succeeded, r.Failed())
}

func (r *Report) add(o Outcome) {
	r.Attempted++
	if o.OK() {
		r.Succeeded++
		return
	}
	r.Failures = append(r.Failures, o)
}

func (r *Report) merge(other *Report) {
	r.Attempted += other.Attempted
	r.Succeeded += other.Succeeded
	r.Failures = append(r.Failures, other.Failures...)
}
