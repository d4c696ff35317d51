package batchdl

import (
	"sync"

	"github.com/pkg/errors"
)

// Queue holds the URLs of one run. It is seeded once and only shrinks:
// every Claim hands a URL to exactly one caller and tombstones its slot.
type Queue struct {
	mu    sync.Mutex
	slots []string
	live  []bool
	head  int // slots before head are all consumed
	left  int
}

// NewQueue seeds a queue with urls. It fails with ErrQueueFull when urls
// does not fit in capacity; a capacity <= 0 means MaxQueueItems.
func NewQueue(urls []string, capacity int) (*Queue, error) {
	if capacity <= 0 {
		capacity = MaxQueueItems
	}
	if len(urls) > capacity {
		return nil, errors.Wrapf(ErrQueueFull, "%d urls, capacity %d", len(urls), capacity)
	}

	q := &Queue{
		slots: make([]string, len(urls)),
		live:  make([]bool, len(urls)),
		left:  len(urls),
	}
	copy(q.slots, urls)
	for i := range q.live {
		q.live[i] = true
	}
	return q, nil
}

// Claim removes and returns the first live URL. Once the queue is drained
// it returns false immediately, for every caller, forever.
func (q *Queue) Claim() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := q.head; i < len(q.slots); i++ {
		if !q.live[i] {
			continue
		}
		url := q.slots[i]
		q.live[i] = false
		q.slots[i] = ""
		q.head = i + 1
		q.left--
		return url, true
	}

	q.head = len(q.slots)
	return "", false
}

// Remaining returns the number of URLs not yet claimed.
func (q *Queue) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.left
}

// Release tombstones every unclaimed URL. Used when a run is aborted.
func (q *Queue) Release() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := q.head; i < len(q.slots); i++ {
		q.live[i] = false
		q.slots[i] = ""
	}
	q.head = len(q.slots)
	q.left = 0
}
