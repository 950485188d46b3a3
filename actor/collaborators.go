package actor

import "time"

// JobFunc is a scheduled unit of work. It is invoked by whatever Scheduler
// implementation an application wires up — typically a closure that sends a
// message to a captured Handle, the same shape as a one-shot or repeat
// timer's wrap function.
type JobFunc func()

// Cancel stops a scheduled job. Calling it more than once is a no-op.
type Cancel func()

// Scheduler is a collaborator interface the core consumes but never
// implements: a deterministic job scheduler an application can build on top
// of Handle.StartOneshotTimer/StartRepeatTimer (delivering a Timer the
// actor reacts to) or Handle.Exec (running the job's side effect directly
// inside the actor's own task). This module ships no implementation of it.
type Scheduler interface {
	At(t time.Time, job JobFunc) Cancel
	Every(d time.Duration, job JobFunc) Cancel
}

// ConfigLoader is a collaborator interface for loading application
// configuration into v. The core itself takes no configuration; this
// exists so application actors have a documented seam for it. This module
// ships no implementation of it.
type ConfigLoader interface {
	Load(v any) error
}
