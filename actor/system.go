package actor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// actorEntry is the system-side bookkeeping record: (id, type name,
// abort/close hook, system-message sender, ping-result slot). Owned by the
// ActorSystem for the life of the task.
type actorEntry struct {
	id           string
	typeName     string
	receiver     sysMsgReceiver
	done         <-chan struct{}
	closeMailbox func()
	pingResponse *atomic.Uint64
}

// systemRequest is the closed sum of requests the supervisor loop accepts
// on its own in-process channel — the mechanism actor code uses to create
// new actors or ask for shutdown without holding a mutable reference to
// the system.
type systemRequest interface{ isSystemRequest() }

type requestTerminationMsg struct{}

func (requestTerminationMsg) isSystemRequest() {}

type requestActorOf struct {
	entry *actorEntry
	start func()
	reply chan error
}

func (requestActorOf) isSystemRequest() {}

// ActorSystem is the supervisor that owns a set of actor tasks, a
// construction-request channel, and a ping cycle counter.
type ActorSystem struct {
	id string

	mu      sync.RWMutex
	entries []*actorEntry

	requests  chan systemRequest
	pingCycle atomic.Uint32
}

// NewActorSystem creates an empty system identified by id.
func NewActorSystem(id string) *ActorSystem {
	return &ActorSystem{
		id:       id,
		requests: make(chan systemRequest, 8),
	}
}

// ID returns the system's identifier.
func (s *ActorSystem) ID() string { return s.id }

// Handle returns the object-safe system handle actor behaviors use to
// request new actors or shutdown without a mutable reference to the
// system itself.
func (s *ActorSystem) Handle() *SystemHandle { return &SystemHandle{sys: s} }

func (s *ActorSystem) addEntry(e *actorEntry) {
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
}

func (s *ActorSystem) snapshotEntries() []*actorEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*actorEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *ActorSystem) requestTermination() {
	select {
	case s.requests <- requestTerminationMsg{}:
	default:
		// supervisor loop isn't draining (never started, or already shutting
		// down) — there is nothing more useful to do than drop the request,
		// mirroring the source's best-effort system-message delivery.
	}
}

// ActorOf creates a mailbox, spawns the task, records the entry, and
// returns the handle. This is the local/direct variant — infallible,
// intended for use from the goroutine that owns *ActorSystem before (or
// instead of) running ProcessRequests.
func ActorOf[M Msg](sys *ActorSystem, behavior Actor[M], capacity int, id string) *Handle[M] {
	if id == "" {
		id = uuid.NewString()
	}
	mb := NewMailbox[M](capacity)
	h := newHandle(id, mb)
	t := newTask(sys, h, mb, behavior)

	entry := &actorEntry{
		id:           id,
		typeName:     typeNameOf(behavior),
		receiver:     &handleSysAdapter[M]{h: h, wrap: func(m Msg) M { return m.(M) }},
		done:         t.done,
		closeMailbox: mb.Close,
		pingResponse: &atomic.Uint64{},
	}
	sys.addEntry(entry)

	go t.run()
	return h
}

// PreActor allocates a mailbox and id only; no task exists yet. Used to
// break construction cycles between two actors that each need the other's
// handle up front.
func PreActor[M Msg](sys *ActorSystem, id string, capacity int) *PreHandle[M] {
	if id == "" {
		id = uuid.NewString()
	}
	return &PreHandle[M]{id: id, mailbox: NewMailbox[M](capacity)}
}

// BindPreActor attaches behavior to a pre-allocated mailbox and starts the
// task, binding the existing mailbox rather than creating a new one. Any
// message already enqueued via the pre-handle is the first message the
// bound task observes.
func BindPreActor[M Msg](sys *ActorSystem, pre *PreHandle[M], behavior Actor[M]) *Handle[M] {
	h := newHandle(pre.id, pre.mailbox)
	t := newTask(sys, h, pre.mailbox, behavior)

	entry := &actorEntry{
		id:           pre.id,
		typeName:     typeNameOf(behavior),
		receiver:     &handleSysAdapter[M]{h: h, wrap: func(m Msg) M { return m.(M) }},
		done:         t.done,
		closeMailbox: pre.mailbox.Close,
		pingResponse: &atomic.Uint64{},
	}
	sys.addEntry(entry)

	go t.run()
	return h
}

func typeNameOf(v any) string { return fmt.Sprintf("%T", v) }

// SystemHandle is the object-safe reference actor behavior holds to reach
// back into the system it is supervised by, without a mutable reference.
type SystemHandle struct {
	sys *ActorSystem
}

// RequestTermination asks the supervisor to begin shutdown. It is what a
// RequestTermination Directive does internally, and is also callable
// directly by application code holding a SystemHandle.
func (h *SystemHandle) RequestTermination() { h.sys.requestTermination() }

// RequestActorOf is the remote construction-request variant: it builds the
// mailbox and handle synchronously (so the caller gets a usable Handle[M]
// immediately) but defers actually starting the task's goroutine to the
// supervisor's ProcessRequests loop, waiting up to 1s for the request to be
// accepted onto the system's own channel.
func RequestActorOf[M Msg](h *SystemHandle, behavior Actor[M], capacity int, id string) (*Handle[M], error) {
	if id == "" {
		id = uuid.NewString()
	}
	mb := NewMailbox[M](capacity)
	hnd := newHandle(id, mb)
	t := newTask(h.sys, hnd, mb, behavior)

	entry := &actorEntry{
		id:           id,
		typeName:     typeNameOf(behavior),
		receiver:     &handleSysAdapter[M]{h: hnd, wrap: func(m Msg) M { return m.(M) }},
		done:         t.done,
		closeMailbox: mb.Close,
		pingResponse: &atomic.Uint64{},
	}

	req := requestActorOf{entry: entry, start: func() { go t.run() }, reply: make(chan error, 1)}

	ctx, cancel := context.WithTimeout(context.Background(), Secs(1))
	defer cancel()

	select {
	case h.sys.requests <- req:
	case <-ctx.Done():
		return nil, errTimeout(Secs(1))
	}

	select {
	case err := <-req.reply:
		if err != nil {
			return nil, err
		}
		return hnd, nil
	case <-ctx.Done():
		return nil, errTimeout(Secs(1))
	}
}

// applyAll runs fn over every registered entry, aggregating failures into
// an AllOpFailed error. Entries are dispatched concurrently (via
// golang.org/x/sync/errgroup) since send_start/send_terminate are
// independent per actor; the source's reference loop is sequential only
// because Rust's borrow checker makes concurrent iteration more ceremony
// than it is worth there.
func (s *ActorSystem) applyAll(op string, fn func(e *actorEntry) error) error {
	entries := s.snapshotEntries()
	if len(entries) == 0 {
		return nil
	}

	var (
		mu        sync.Mutex
		failed    int
		failedIDs []string
	)

	var g errgroup.Group
	for _, e := range entries {
		e := e
		g.Go(func() error {
			if err := fn(e); err != nil {
				mu.Lock()
				failed++
				failedIDs = append(failedIDs, e.id)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return AllOpResult(op, len(entries), failed, failedIDs)
}

// StartAll broadcasts Start to every actor in registration order (sent
// concurrently; registration order only determines entry order, not
// delivery order — see the FIFO-per-producer invariant for why that's
// safe), aggregating per-actor failures.
func (s *ActorSystem) StartAll(d time.Duration) error {
	return s.applyAll("start_all", func(e *actorEntry) error {
		return e.receiver.sendStart(d)
	})
}

// TerminateAll broadcasts Terminate to every actor.
func (s *ActorSystem) TerminateAll(d time.Duration) error {
	return s.applyAll("terminate_all", func(e *actorEntry) error {
		return e.receiver.sendTerminate(d)
	})
}

// PauseAll broadcasts Pause to every actor. Pause carries no enforced
// semantics in the core itself (see DefaultReceiveAction); an actor's own
// Receive decides what, if anything, pausing means for its state.
func (s *ActorSystem) PauseAll(d time.Duration) error {
	return s.applyAll("pause_all", func(e *actorEntry) error {
		return e.receiver.sendPause(d)
	})
}

// ResumeAll broadcasts Resume to every actor.
func (s *ActorSystem) ResumeAll(d time.Duration) error {
	return s.applyAll("resume_all", func(e *actorEntry) error {
		return e.receiver.sendResume(d)
	})
}

// WaitAll blocks until every currently-registered task has exited or d
// elapses, whichever comes first.
func (s *ActorSystem) WaitAll(d time.Duration) error {
	entries := s.snapshotEntries()
	deadline := time.After(d)
	closedCount := 0

	for _, e := range entries {
		select {
		case <-e.done:
			closedCount++
		case <-deadline:
			return AllOpResult("wait_all", len(entries), len(entries)-closedCount, nil)
		}
	}
	return nil
}

// TerminateAndWait broadcasts Terminate and waits for all tasks to exit,
// falling back to AbortAll if the deadline is exceeded.
func (s *ActorSystem) TerminateAndWait(d time.Duration) error {
	_ = s.TerminateAll(d)
	if err := s.WaitAll(d); err != nil {
		s.AbortAll()
		return err
	}
	return nil
}

// AbortAll forcibly closes every actor's mailbox. A task blocked in Recv
// observes the close immediately and exits; a task currently inside user
// Receive code is not preempted — Go offers no mechanism to interrupt a
// running goroutine, and the core does not pretend otherwise.
func (s *ActorSystem) AbortAll() {
	for _, e := range s.snapshotEntries() {
		e.closeMailbox()
	}
}

// PingAll increments the cycle counter and dispatches Ping to every actor;
// responses land in each entry's ping-response slot as actors process
// their mailbox (see Ping.StoreResponse / DefaultReceiveAction).
func (s *ActorSystem) PingAll(d time.Duration) error {
	cycle := s.pingCycle.Add(1)
	return s.applyAll("ping_all", func(e *actorEntry) error {
		return e.receiver.sendPing(Ping{Cycle: cycle, Sent: time.Now(), Response: e.pingResponse})
	})
}

// PingResult returns the last stored (cycle, latency) for the named actor,
// or ok=false if no Ping response has landed yet.
func (s *ActorSystem) PingResult(id string) (cycle uint32, latency time.Duration, ok bool) {
	for _, e := range s.snapshotEntries() {
		if e.id == id {
			packed := e.pingResponse.Load()
			if packed == 0 {
				return 0, 0, false
			}
			c, l := PingCycleAndLatency(packed)
			return c, l, true
		}
	}
	return 0, 0, false
}

// ProcessRequests runs the supervisor loop until it receives a
// RequestTermination, then terminates and waits. It is the mechanism that
// actually starts tasks requested via RequestActorOf from inside other
// actors.
func (s *ActorSystem) ProcessRequests(ctx context.Context) error {
	for {
		select {
		case req := <-s.requests:
			switch r := req.(type) {
			case requestTerminationMsg:
				return s.TerminateAndWait(Secs(5))
			case requestActorOf:
				s.addEntry(r.entry)
				r.start()
				r.reply <- nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
