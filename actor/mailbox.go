package actor

import (
	"context"
	"sync"
	"time"

	"github.com/gammazero/deque"
)

// DefaultMailboxCapacity is used whenever a caller passes a non-positive
// capacity to NewMailbox.
const DefaultMailboxCapacity = 16

// Mailbox is a bounded FIFO channel of typed messages. Storage is a
// github.com/gammazero/deque ring buffer guarded by a mutex; two rotating
// "wake" channels stand in for condition variables so that blocking Send
// and Recv can still honor context cancellation, which a bare Go channel
// cannot do for the bounded-send-with-timeout case without a second
// goroutine per call.
//
// Sole consumer is the owning actor task; any number of cloned handles may
// produce concurrently.
type Mailbox[M Msg] struct {
	mu       sync.Mutex
	buf      deque.Deque[M]
	capacity int
	closed   bool
	notEmpty chan struct{}
	notFull  chan struct{}
}

// NewMailbox allocates a mailbox with the given capacity (DefaultMailboxCapacity
// if capacity <= 0).
func NewMailbox[M Msg](capacity int) *Mailbox[M] {
	if capacity <= 0 {
		capacity = DefaultMailboxCapacity
	}
	mb := &Mailbox[M]{
		capacity: capacity,
		notEmpty: make(chan struct{}),
		notFull:  make(chan struct{}),
	}
	return mb
}

func (mb *Mailbox[M]) wakeEmptyWaiters() {
	close(mb.notEmpty)
	mb.notEmpty = make(chan struct{})
}

func (mb *Mailbox[M]) wakeFullWaiters() {
	close(mb.notFull)
	mb.notFull = make(chan struct{})
}

// Send suspends until the message is enqueued, the mailbox closes (returns
// ErrReceiverClosed), or ctx is done (returns ctx.Err()).
func (mb *Mailbox[M]) Send(ctx context.Context, msg M) error {
	for {
		mb.mu.Lock()
		if mb.closed {
			mb.mu.Unlock()
			return ErrReceiverClosed
		}
		if mb.buf.Len() < mb.capacity {
			mb.buf.PushBack(msg)
			mb.wakeEmptyWaiters()
			mb.mu.Unlock()
			return nil
		}
		wait := mb.notFull
		mb.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// SendWithTimeout is Send bounded by d; it fails with a KindTimeout error
// after d elapses instead of suspending indefinitely.
func (mb *Mailbox[M]) SendWithTimeout(msg M, d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	err := mb.Send(ctx, msg)
	if err == context.DeadlineExceeded {
		return errTimeout(d)
	}
	return err
}

// TrySend never suspends: ErrReceiverFull at capacity, ErrReceiverClosed if
// closed, nil on success.
func (mb *Mailbox[M]) TrySend(msg M) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.closed {
		return ErrReceiverClosed
	}
	if mb.buf.Len() >= mb.capacity {
		return ErrReceiverFull
	}
	mb.buf.PushBack(msg)
	mb.wakeEmptyWaiters()
	return nil
}

// Recv suspends until a message is available or the mailbox is closed and
// empty (returns the zero value and ok=false). ctx cancellation returns
// ok=false and a non-nil error.
func (mb *Mailbox[M]) Recv(ctx context.Context) (msg M, ok bool, err error) {
	for {
		mb.mu.Lock()
		if mb.buf.Len() > 0 {
			v := mb.buf.PopFront()
			mb.wakeFullWaiters()
			mb.mu.Unlock()
			return v, true, nil
		}
		if mb.closed {
			mb.mu.Unlock()
			var zero M
			return zero, false, nil
		}
		wait := mb.notEmpty
		mb.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			var zero M
			return zero, false, ctx.Err()
		}
	}
}

// Len reports the number of messages currently queued.
func (mb *Mailbox[M]) Len() int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.buf.Len()
}

// Close prevents further sends; in-flight messages already enqueued are
// still drained by Recv. Idempotent.
func (mb *Mailbox[M]) Close() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.closed {
		return
	}
	mb.closed = true
	mb.wakeEmptyWaiters()
	mb.wakeFullWaiters()
}

// Closed reports whether Close has been called.
func (mb *Mailbox[M]) Closed() bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.closed
}
