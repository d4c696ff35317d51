package batchdl

import "fmt"

// ProgressFunc receives the bytes written so far and the expected total.
// total is -1 when the server did not announce a length.
type ProgressFunc func(downloaded, total int64)

// ProgressReporter turns transport callbacks of one fetch into an
// overwriting "Progress: NN.NN%" console line. The figure is best effort:
// it follows callback granularity and is not required to be monotonic.
type ProgressReporter struct {
	console *Console
	last    string
}

func NewProgressReporter(console *Console) *ProgressReporter {
	return &ProgressReporter{console: console}
}

// Report emits nothing when total is unknown or zero.
func (p *ProgressReporter) Report(downloaded, total int64) {
	if total <= 0 {
		return
	}

	percent := float64(downloaded) / float64(total) * 100
	text := fmt.Sprintf("Progress: %.2f%%", percent)
	if text == p.last {
		return
	}
	p.last = text
	p.console.Progress(text)
}
