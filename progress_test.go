package batchdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressUnknownTotal(t *testing.T) {
	console, out, _ := testConsole()
	reporter := NewProgressReporter(console)

	reporter.Report(1024, -1)
	reporter.Report(1024, 0)

	assert.Empty(t, out.String())
}

func TestProgressPercentage(t *testing.T) {
	console, out, _ := testConsole()
	reporter := NewProgressReporter(console)

	reporter.Report(50, 200)
	assert.Equal(t, "\rProgress: 25.00%", out.String())

	// same figure again is not redrawn
	reporter.Report(50, 200)
	assert.Equal(t, "\rProgress: 25.00%", out.String())

	out.Reset()
	reporter.Report(1, 3)
	assert.Equal(t, "\rProgress: 33.33%", out.String())

	out.Reset()
	reporter.Report(200, 200)
	assert.Equal(t, "\rProgress: 100.00%", out.String())
}

func TestProgressSmallFractions(t *testing.T) {
	console, out, _ := testConsole()
	reporter := NewProgressReporter(console)

	// no integer division: partial transfers show a partial figure
	reporter.Report(1, 8)
	assert.Equal(t, "\rProgress: 12.50%", out.String())
}
