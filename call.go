package fetchkit

import (
	"context"
	"errors"
	"sync/atomic"
)

// Call is a cancellable handle for an in-flight request. It settles
// exactly once, either with a Response or with an error.
type Call struct {
	done chan struct{}

	cancel   context.CancelFunc
	timedOut atomic.Bool
	canceled atomic.Bool

	resp *Response
	err  error
}

func newCall(cancel context.CancelFunc) *Call {
	return &Call{
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// Cancel aborts the in-flight request via the shared context, which the
// transport observes. It is safe to call multiple times and after the
// call has settled.
func (c *Call) Cancel() {
	c.canceled.Store(true)
	c.cancel()
}

// Done is closed once the call has settled.
func (c *Call) Done() <-chan struct{} { return c.done }

// Result blocks until the call settles and returns the outcome.
func (c *Call) Result() (*Response, error) {
	<-c.done
	return c.resp, c.err
}

// settle records the outcome and releases the call context.
func (c *Call) settle(resp *Response, err error) {
	c.resp = resp
	c.err = err
	c.cancel()
	close(c.done)
}

// classifyAbort maps a transport error onto the error taxonomy:
// ErrTimeout when the timer fired, ErrCanceled when the caller canceled,
// the raw error otherwise.
func (c *Call) classifyAbort(err error) error {
	switch {
	case c.timedOut.Load():
		return ErrTimeout
	case c.canceled.Load() || errors.Is(err, context.Canceled):
		return ErrCanceled
	default:
		return err
	}
}
