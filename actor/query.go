package actor

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// Query is a one-shot reply channel paired with a topic payload — the
// message pattern underlying the request/response ("ask") interaction. The
// requester owns the receive end; the responder, once it holds the
// message, owns the send end and must call Reply at most once.
type Query[T any, R any] struct {
	Tag
	Topic T

	ch     chan R
	closed atomic.Bool
	owned  bool // true for a one-shot Query that should close ch on Drop/finalize
}

func newOneshotQuery[T any, R any](topic T) *Query[T, R] {
	q := &Query[T, R]{Topic: topic, ch: make(chan R, 1), owned: true}
	runtime.SetFinalizer(q, func(q *Query[T, R]) { q.Drop() })
	return q
}

// Reply sends answer through the captured reply end. A second call (or a
// call after Drop) fails with ErrOneshotConsumed.
func (q *Query[T, R]) Reply(answer R) error {
	if q.closed.Swap(true) {
		return ErrOneshotConsumed
	}
	q.ch <- answer
	if q.owned {
		runtime.SetFinalizer(q, nil)
	}
	return nil
}

// Drop marks the query as answered without a value, the equivalent of a
// Rust oneshot Sender going out of scope without a send: any pending Ask
// observes ErrSendersDropped instead of hanging forever. Safe to call more
// than once.
func (q *Query[T, R]) Drop() {
	if q.closed.Swap(true) {
		return
	}
	if q.owned {
		close(q.ch)
		runtime.SetFinalizer(q, nil)
	}
}

// QueryBuilder keeps a single bounded (capacity 1) reply channel around so
// a requester issuing many sequential queries to the same responder type
// amortizes the per-call allocation BuildQuery/Ask would otherwise repeat.
type QueryBuilder[R any] struct {
	ch chan R
}

// NewQueryBuilder allocates a reusable reply channel.
func NewQueryBuilder[R any]() *QueryBuilder[R] {
	return &QueryBuilder[R]{ch: make(chan R, 1)}
}

// BuildQuery wraps topic in a Query that replies through b's shared
// channel instead of allocating a fresh one.
func BuildQuery[T any, R any](b *QueryBuilder[R], topic T) *Query[T, R] {
	return &Query[T, R]{Topic: topic, ch: b.ch, owned: false}
}

// Ask sends a Query built from topic to responder and awaits the reply,
// suspending until it arrives, the responder drops it, or ctx is done.
func Ask[T any, R any](ctx context.Context, responder Sender[*Query[T, R]], topic T) (R, error) {
	q := newOneshotQuery[T, R](topic)
	return awaitReply(ctx, responder, q)
}

// AskWithTimeout is Ask bounded by d.
func AskWithTimeout[T any, R any](responder Sender[*Query[T, R]], topic T, d time.Duration) (R, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	r, err := Ask[T, R](ctx, responder, topic)
	if err == context.DeadlineExceeded {
		var zero R
		return zero, errTimeout(d)
	}
	return r, err
}

// AskBuilt is Ask using a QueryBuilder's shared reply channel.
func AskBuilt[T any, R any](ctx context.Context, b *QueryBuilder[R], responder Sender[*Query[T, R]], topic T) (R, error) {
	q := BuildQuery[T, R](b, topic)
	return awaitReply(ctx, responder, q)
}

func awaitReply[T any, R any](ctx context.Context, responder Sender[*Query[T, R]], q *Query[T, R]) (R, error) {
	var zero R
	if err := responder.Send(q); err != nil {
		return zero, err
	}
	select {
	case r, ok := <-q.ch:
		if !ok {
			return zero, ErrSendersDropped
		}
		return r, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
