package batchdl

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrQueueFull    = errors.New("queue capacity exceeded")
	ErrTooManyURLs  = errors.New("too many urls in list")
	ErrNoWorkers    = errors.New("worker count must be at least 1")
	ErrDestination  = errors.New("destination is not a writable directory")
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("access forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// FileCreateError is returned when the destination file of a fetch cannot be created.
type FileCreateError struct {
	Path string
	Err  error
}

func (e *FileCreateError) Error() string {
	return fmt.Sprintf("create file %s: %v", e.Path, e.Err)
}

func (e *FileCreateError) Unwrap() error {
	return e.Err
}

// StatusError is returned by the transport for any non-2xx response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("http error %s", e.Status)
	}
	return fmt.Sprintf("http error %d", e.Code)
}

// Is lets errors.Is match the common status sentinels.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == 404
	case ErrForbidden:
		return e.Code == 403
	case ErrUnauthorized:
		return e.Code == 401
	}
	return false
}

// SpawnError aborts a run when not every worker could be started.
type SpawnError struct {
	Started int
	Wanted  int
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawned %d of %d workers: %v", e.Started, e.Wanted, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// JoinError aborts a run when a worker did not terminate cleanly.
type JoinError struct {
	Worker int
	Err    error
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.Worker, e.Err)
}

func (e *JoinError) Unwrap() error {
	return e.Err
}
