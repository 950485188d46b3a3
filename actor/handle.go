package actor

import (
	"context"
	"fmt"
	"time"
)

// Sender is the "sender of M" capability: something a caller can hand off
// to code that only needs to push messages of type M, without knowing the
// full message sum or actor type behind it. Resolved at the call site
// (static flavor) — implementations are plain structs, not boxed behind an
// interface{} allocation.
type Sender[M Msg] interface {
	ID() string
	Send(msg M) error
	SendWithTimeout(msg M, d time.Duration) error
	TrySend(msg M) error
}

// DynSender is the object-safe "dynamic sender of M" capability used only
// where the sender collection is heterogeneous at runtime (subscriptions,
// callbacks). In Go, interface values are already object-safe and a
// Handle's methods already satisfy this shape directly, so DynSender is
// simply an alias: unlike Rust, storing the sender behind this interface
// costs an interface-table indirection, not a per-send future allocation.
type DynSender[M Msg] = Sender[M]

// Handle is a cheap, clonable, identity-bearing sender front-end to a
// mailbox: the (identifier, mailbox, sum-tag) triple from the data model.
// Handles are plain structs — copying one is "cloning" it, the way copying
// a pointer-sized Rust Arc clone is cheap.
type Handle[M Msg] struct {
	id      string
	mailbox *Mailbox[M]
}

func newHandle[M Msg](id string, mailbox *Mailbox[M]) *Handle[M] {
	return &Handle[M]{id: id, mailbox: mailbox}
}

// ID returns the actor identifier this handle addresses.
func (h *Handle[M]) ID() string { return h.id }

func (h *Handle[M]) String() string { return fmt.Sprintf("Handle(%s)", h.id) }

// Send suspends until the message is enqueued or the mailbox is closed.
func (h *Handle[M]) Send(msg M) error {
	return h.mailbox.Send(context.Background(), msg)
}

// SendCtx is Send with caller-supplied cancellation, the idiomatic Go
// equivalent of a timeout that also honors shutdown signals.
func (h *Handle[M]) SendCtx(ctx context.Context, msg M) error {
	return h.mailbox.Send(ctx, msg)
}

// SendWithTimeout fails with a KindTimeout error if msg isn't enqueued
// within d.
func (h *Handle[M]) SendWithTimeout(msg M, d time.Duration) error {
	return h.mailbox.SendWithTimeout(msg, d)
}

// TrySend never suspends.
func (h *Handle[M]) TrySend(msg M) error {
	return h.mailbox.TrySend(msg)
}

// Equal reports whether h and other address the same mailbox, the
// identity comparison two cloned handles must satisfy.
func (h *Handle[M]) Equal(other *Handle[M]) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.mailbox == other.mailbox
}

// sysMsgReceiver is the object-safe interface the ActorSystem uses to send
// the six system messages to an actor without knowing its full message sum.
// It is implemented generically below via a closure-based adapter captured
// at ActorOf/BindPreActor time, since Go cannot add methods to Handle[M]
// that convert literal system message structs into an arbitrary M.
type sysMsgReceiver interface {
	id() string
	sendStart(d time.Duration) error
	sendPause(d time.Duration) error
	sendResume(d time.Duration) error
	sendTerminate(d time.Duration) error
	sendPing(p Ping) error
	sendTimer(t Timer) error
}

// handleSysAdapter implements sysMsgReceiver for a concrete Handle[M] given
// a function that wraps any system message value into M.
type handleSysAdapter[M Msg] struct {
	h    *Handle[M]
	wrap func(Msg) M
}

func (a *handleSysAdapter[M]) id() string { return a.h.id }

func (a *handleSysAdapter[M]) sendStart(d time.Duration) error {
	return a.h.SendWithTimeout(a.wrap(Start{}), d)
}
func (a *handleSysAdapter[M]) sendPause(d time.Duration) error {
	return a.h.SendWithTimeout(a.wrap(Pause{}), d)
}
func (a *handleSysAdapter[M]) sendResume(d time.Duration) error {
	return a.h.SendWithTimeout(a.wrap(Resume{}), d)
}
func (a *handleSysAdapter[M]) sendTerminate(d time.Duration) error {
	return a.h.SendWithTimeout(a.wrap(Terminate{}), d)
}
func (a *handleSysAdapter[M]) sendPing(p Ping) error {
	return a.h.TrySend(a.wrap(p))
}
func (a *handleSysAdapter[M]) sendTimer(t Timer) error {
	return a.h.TrySend(a.wrap(t))
}

// PreHandle is a handle reserved before the actor task exists: the
// mailbox is pre-allocated, so sends enqueue immediately, but nothing
// dequeues until Bind (via ActorSystem.BindPreActor) attaches behavior.
type PreHandle[M Msg] struct {
	id      string
	mailbox *Mailbox[M]
}

// Handle exposes the pre-allocated handle so it can be passed to other
// actors' constructors before binding, the mechanism that breaks
// construction cycles.
func (p *PreHandle[M]) Handle() *Handle[M] {
	return newHandle(p.id, p.mailbox)
}

// ID returns the reserved actor identifier.
func (p *PreHandle[M]) ID() string { return p.id }

type convertingSender[A, B Msg] struct {
	h    *Handle[A]
	into func(B) A
}

func (c *convertingSender[A, B]) ID() string { return c.h.ID() }
func (c *convertingSender[A, B]) Send(msg B) error {
	return c.h.Send(c.into(msg))
}
func (c *convertingSender[A, B]) SendWithTimeout(msg B, d time.Duration) error {
	return c.h.SendWithTimeout(c.into(msg), d)
}
func (c *convertingSender[A, B]) TrySend(msg B) error {
	return c.h.TrySend(c.into(msg))
}

// As wraps h so it can be passed anywhere a "sender of B" is expected,
// provided the caller supplies the B->A conversion — the static,
// zero-allocation flavor of a polymorphic sender capability. Most
// application code uses this rather than a boxed DynSender.
func As[A, B Msg](h *Handle[A], into func(B) A) Sender[B] {
	return &convertingSender[A, B]{h: h, into: into}
}
