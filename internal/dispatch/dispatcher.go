package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-search-bot/internal/reply"
	"movie-search-bot/internal/update"
	"movie-search-bot/pkg/log"
)

// ErrDeadline reports a handler that did not finish before the dispatch
// deadline. The invocation is abandoned; sends already completed are not
// retried.
var ErrDeadline = errors.New("handler exceeded dispatch deadline")

// Result is the outcome of one dispatch. Err is nil on success, including the
// no-op case where no handler matched.
type Result struct {
	Handler string
	Err     error
}

// Failed reports whether the dispatch ended in a handler failure.
func (r Result) Failed() bool { return r.Err != nil }

// SenderFor binds a reply sender to the chat an update originated from.
type SenderFor func(chatID int64) reply.Sender

// Dispatcher resolves updates against a registry and invokes the matching
// handler with its execution bounded and its failures contained.
type Dispatcher struct {
	l         log.Logger
	registry  *Lazy
	senderFor SenderFor
	timeout   time.Duration
}

// NewDispatcher creates a Dispatcher. timeout bounds each handler invocation;
// the serverless host kills the request shortly after, so dispatch must settle
// first to keep the one-request-one-response contract.
func NewDispatcher(l log.Logger, registry *Lazy, senderFor SenderFor, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		l:         l,
		registry:  registry,
		senderFor: senderFor,
		timeout:   timeout,
	}
}

// Dispatch routes u to its handler. It always returns: handler errors and
// panics become a failed Result, a missing handler is a successful no-op, and
// a handler still running at the deadline is abandoned with ErrDeadline.
func (d *Dispatcher) Dispatch(ctx context.Context, u update.Update) Result {
	h := d.registry.Get().Resolve(u)
	if h == nil {
		d.l.Debugf(ctx, "dispatch: no handler for update %d (%s), acknowledging", u.ID, u.Kind)
		return Result{}
	}

	hctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.invoke(hctx, h, u)
	}()

	select {
	case err := <-done:
		if err != nil {
			d.l.Errorf(ctx, "dispatch: handler %s failed on update %d: %v", h.Name(), u.ID, err)
			return Result{Handler: h.Name(), Err: err}
		}
		return Result{Handler: h.Name()}
	case <-hctx.Done():
		d.l.Errorf(ctx, "dispatch: handler %s abandoned on update %d: %v", h.Name(), u.ID, hctx.Err())
		return Result{Handler: h.Name(), Err: fmt.Errorf("%w: %v", ErrDeadline, hctx.Err())}
	}
}

// invoke runs the handler with panics converted to errors, so a faulty
// handler can never take down the request pipeline.
func (d *Dispatcher) invoke(ctx context.Context, h Handler, u update.Update) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler %s panicked: %v", h.Name(), r)
		}
	}()
	return h.Handle(ctx, u, d.senderFor(u.ChatID))
}
