package actor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Msg is the marker every actor message variant implements, closing the
// sum against accidental satisfaction by an unrelated type. Generated
// system messages and user payload types both implement it.
type Msg interface {
	isActorMsg()
}

// sysMsg is embedded by the seven system message structs so they satisfy Msg
// without every user-defined variant having to repeat the same method.
type sysMsg struct{}

func (sysMsg) isActorMsg() {}

// Tag is the zero-cost marker application message types embed to satisfy
// Msg, the same marker-method technique protoc-gen-go's generated
// isXxx_Yyy() oneof markers use (the pack's protobuf-based services —
// Roasbeef's substrate, phuhao00's pandaparty): an unexported interface
// method can only be implemented by types in this package or types that
// embed something this package exports. Because Tag is exported, any type
// that embeds it satisfies Msg, so an actor's message type M (an interface
// embedding Msg) is not closed against unrelated Msg implementers; Go has
// no code-generated sum type that would narrow it to a fixed variant list.
//
//	type Greet struct {
//	    actor.Tag
//	    Text string
//	}
type Tag struct{}

func (Tag) isActorMsg() {}

// Start is delivered once an actor's task is running and the system has
// broadcast Start (directly, via StartAll, or individually).
type Start struct{ sysMsg }

// Pause and Resume are informational by default (see DESIGN.md open
// question); user behavior is free to react to them.
type Pause struct{ sysMsg }
type Resume struct{ sysMsg }

// Terminate is the only user-facing directive that reliably ends the
// receive loop gracefully via the default receive action.
type Terminate struct{ sysMsg }

// Timer is delivered when a one-shot or repeating timer started via
// Handle.StartOneshotTimer/StartRepeatTimer fires.
type Timer struct {
	sysMsg
	ID int64
}

// Exec carries a side-effecting closure the actor task executes in its own
// context, serializing mutation of actor state from code that only holds a
// handle.
type Exec struct {
	sysMsg
	Fn func()
}

func (e Exec) String() string { return "Exec(fn)" }

// pingLatencyBits is the width of the latency field packed into a Ping
// response word. The remaining high bits (64-pingLatencyBits = 28 of them)
// belong to the cycle counter, so the two fields must never overlap: the
// latency mask below has to fit entirely below 1<<pingLatencyBits.
const pingLatencyBits = 36

// maxPingResponseNanos is the latency ceiling StoreResponse clamps to: 2^36-1
// nanoseconds, ~68.7s. A round trip slower than this (a badly stalled actor,
// not ordinary jitter) reports the ceiling instead of a true value.
const maxPingResponseNanos uint64 = (1 << pingLatencyBits) - 1

// Ping is the exception to "actors only modify local state": the receiver
// writes directly into Response (a shared atomic word) instead of replying
// through the mailbox, keeping liveness checks off the critical receive
// path.
type Ping struct {
	sysMsg
	Cycle    uint32
	Sent     time.Time
	Response *atomic.Uint64
}

// StoreResponse packs (cycle, elapsed-ns) into Response, clamping elapsed
// time to the ceiling if the actor was too slow to answer promptly. Cycle
// occupies the bits above pingLatencyBits, so it aliases (wraps) only past
// 2^28 pings — far beyond any liveness-check deployment's lifetime.
func (p Ping) StoreResponse() {
	if p.Response == nil {
		return
	}
	dt := uint64(time.Since(p.Sent).Nanoseconds())
	if dt > maxPingResponseNanos {
		dt = maxPingResponseNanos
	}
	p.Response.Store((uint64(p.Cycle) << pingLatencyBits) | dt)
}

// PingCycleAndLatency unpacks a value stored by StoreResponse.
func PingCycleAndLatency(packed uint64) (cycle uint32, latency time.Duration) {
	cycle = uint32(packed >> pingLatencyBits)
	latency = time.Duration(packed & maxPingResponseNanos)
	return
}

// Directive is what user behavior returns to tell the receive loop what to
// do next.
type Directive int

const (
	// Continue keeps the receive loop running.
	Continue Directive = iota
	// Stop closes the mailbox and exits the loop.
	Stop
	// RequestTermination asks the owning ActorSystem to broadcast
	// Terminate to every actor it supervises.
	RequestTermination
)

func (d Directive) String() string {
	switch d {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	case RequestTermination:
		return "RequestTermination"
	default:
		return fmt.Sprintf("Directive(%d)", int(d))
	}
}

// DefaultReceiveAction maps Terminate to Stop and every other system
// variant to Continue. Actor.Receive implementations call this from their
// default/unmatched-variant arm. Ping is the one variant the default action
// has a side effect for: it stores the round-trip response before
// continuing, exactly the way the generated default_receive_action in the
// source macro (odin_actor_proc_macros) intercepts _Ping_.
func DefaultReceiveAction(msg Msg) Directive {
	switch m := msg.(type) {
	case Terminate:
		return Stop
	case Ping:
		m.StoreResponse()
		return Continue
	default:
		return Continue
	}
}
