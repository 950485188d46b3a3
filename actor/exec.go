package actor

// Exec enqueues a side-effecting closure that runs inside the actor's own
// task, letting callers that only hold a handle serialize a mutation of
// actor state without defining a dedicated message variant for it.
func (h *Handle[M]) Exec(fn func(), wrap func(Exec) M) error {
	return h.Send(wrap(Exec{Fn: fn}))
}

// TryExec is Exec using TrySend, never suspending.
func (h *Handle[M]) TryExec(fn func(), wrap func(Exec) M) error {
	return h.TrySend(wrap(Exec{Fn: fn}))
}
