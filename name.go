package batchdl

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultNameFormat is used for URLs that carry no usable file name.
const DefaultNameFormat = "File_%d.txt"

// Namer derives on-disk file names from URLs.
// Fallback names come from a counter owned by the Namer, so they never
// collide no matter how many goroutines ask at once.
type Namer struct {
	mu   sync.Mutex
	next int
}

// NewNamer returns a Namer whose fallback names start at File_0.txt.
func NewNamer() *Namer {
	return &Namer{}
}

// FileName returns the file name for rawURL: the text after the last '/',
// cut at the first '?'. When nothing usable remains a File_<n>.txt name is
// allocated instead.
func (n *Namer) FileName(rawURL string) string {
	if name, ok := nameFromURL(rawURL); ok {
		return name
	}
	return n.fallback()
}

func (n *Namer) fallback() string {
	n.mu.Lock()
	id := n.next
	n.next++
	n.mu.Unlock()

	return fmt.Sprintf(DefaultNameFormat, id)
}

func nameFromURL(rawURL string) (string, bool) {
	slash := strings.LastIndexByte(rawURL, '/')
	if slash < 0 || slash == len(rawURL)-1 {
		return "", false
	}

	name := rawURL[slash+1:]
	// a query string starts at the first '?'
	if q := strings.IndexByte(name, '?'); q >= 0 {
		name = name[:q]
	}

	// "." and ".." would escape the destination file into a directory
	if name == "" || name == "." || name == ".." {
		return "", false
	}
	return name, true
}
