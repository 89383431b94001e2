package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Severity tells the task loop how to react to an error returned by a step.
type Severity int

const (
	// SeverityIgnore errors are logged and the loop keeps ticking.
	SeverityIgnore Severity = iota
	// SeverityFatal errors stop the loop.
	SeverityFatal
)

func (s Severity) String() string {
	if s == SeverityFatal {
		return "fatal"
	}
	return "ignore"
}

// Error is a step error classified by severity.
type Error struct {
	Severity Severity
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Severity, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal classifies err as fatal.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Severity: SeverityFatal, Err: err}
}

// Ignore classifies err as ignorable.
func Ignore(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Severity: SeverityIgnore, Err: err}
}

// IsFatal reports whether err stops a task. Unclassified errors are fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var taskErr *Error
	if errors.As(err, &taskErr) {
		return taskErr.Severity == SeverityFatal
	}

	return true
}

// StepFunc is a single iteration of a background task.
type StepFunc func(ctx context.Context) error

// Handle controls a running background task.
type Handle struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// Spawn runs step every interval until ctx is done, the handle is shut down or a step returns a
// fatal error. Cancellation is observed between steps; a running step is not interrupted by
// the loop itself but receives the cancelled context.
func Spawn(ctx context.Context, name string, interval time.Duration, logger *zap.Logger, step StepFunc) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("task stopped", zap.String("task", name))
				return
			default:
			}

			if err := step(ctx); err != nil {
				if IsFatal(err) {
					logger.Error("task stopped with a fatal error", zap.String("task", name), zap.Error(err))
					h.setErr(err)
					return
				}
				logger.Warn("task step failed, continuing", zap.String("task", name), zap.Error(err))
			}

			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		}
	}()

	return h
}

// Name returns the name the task was spawned with.
func (h *Handle) Name() string {
	return h.name
}

// Shutdown asks the task to stop. It doesn't wait for the task to exit.
func (h *Handle) Shutdown() {
	h.cancel()
}

// Done is closed when the task has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the task has exited and returns the fatal error that stopped it, if any.
func (h *Handle) Wait() error {
	<-h.done
	return h.Err()
}

// Err returns the fatal error that stopped the task, or nil.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Handle) setErr(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.err = err
}
