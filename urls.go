package batchdl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadURLs reads one URL per line from r. Blank lines are skipped and
// surrounding whitespace, including a trailing '\r', is dropped. More than
// max URLs fails with ErrTooManyURLs; max <= 0 means MaxQueueItems.
func ReadURLs(r io.Reader, max int) ([]string, error) {
	if max <= 0 {
		max = MaxQueueItems
	}

	urls := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(urls) == max {
			return nil, errors.Wrapf(ErrTooManyURLs, "limit is %d", max)
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read url list")
	}
	return urls, nil
}

// LoadURLs reads the URL list stored at path.
func LoadURLs(path string, max int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open url list")
	}
	defer f.Close()

	return ReadURLs(f, max)
}
