package batchdl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// TimestampLayout is the completion time layout of a "Downloaded" line.
const TimestampLayout = "15:04:05"

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// Console serializes status output of concurrent workers. Every call holds
// one lock for the whole write, so lines never interleave. A progress line
// is drawn with a leading '\r' and stays open until the next write.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	color   bool
	pending int // display width of the open progress line, 0 if none
}

// NewConsole creates a Console writing status lines to out and failure
// lines to errOut. A nil writer is replaced by os.Stdout or os.Stderr.
func NewConsole(out, errOut io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Console{out: out, errOut: errOut}
}

// SetColor turns colored outcome lines on or off.
func (c *Console) SetColor(enabled bool) *Console {
	c.mu.Lock()
	c.color = enabled
	c.mu.Unlock()
	return c
}

// WriteLine writes text as one complete line to the status output.
func (c *Console) WriteLine(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeProgress()
	fmt.Fprintln(c.out, text)
}

// Errorln writes text as one complete line to the failure output.
func (c *Console) Errorln(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeProgress()
	fmt.Fprintln(c.errOut, text)
}

// Progress overwrites the open progress line with text.
func (c *Console) Progress(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprint(c.out, "\r"+runewidth.FillRight(text, c.pending))
	if w := runewidth.StringWidth(text); w > c.pending {
		c.pending = w
	}
}

// Write lets raw renderers, such as a progress bar, share the lock.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := c.out.Write(p)
	s := string(p)
	switch {
	case strings.HasSuffix(s, "\n"):
		c.pending = 0
	case strings.LastIndexByte(s, '\r') >= 0:
		c.pending = runewidth.StringWidth(s[strings.LastIndexByte(s, '\r')+1:])
	default:
		c.pending += runewidth.StringWidth(s)
	}
	return n, err
}

// Downloaded reports a completed file.
func (c *Console) Downloaded(name string, at time.Time) {
	line := fmt.Sprintf("Downloaded %s [%s]", name, at.Local().Format(TimestampLayout))
	c.WriteLine(c.paint(okColor, line))
}

// Failed reports a URL that could not be downloaded.
func (c *Console) Failed(url string, err error) {
	line := fmt.Sprintf("Download failed for %s: %v", url, err)
	c.Errorln(c.paint(failColor, line))
}

// Report writes the single terminal line for an outcome.
func (c *Console) Report(out Outcome) {
	if out.OK() {
		c.Downloaded(out.Name, out.At)
		return
	}
	c.Failed(out.URL, out.Err)
}

func (c *Console) paint(p *color.Color, line string) string {
	c.mu.Lock()
	enabled := c.color
	c.mu.Unlock()

	if !enabled {
		return line
	}
	return p.Sprint(line)
}

// closeProgress blanks an open progress line so the next line replaces it.
// Callers hold c.mu.
func (c *Console) closeProgress() {
	if c.pending == 0 {
		return
	}
	fmt.Fprint(c.out, "\r"+strings.Repeat(" ", c.pending)+"\r")
	c.pending = 0
}
