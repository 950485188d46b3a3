package actor

import (
	"context"
	"runtime/debug"
)

// Actor is the user-supplied behavior bound to a mailbox. Receive is a
// pure function of (state, msg, self, sys) that may suspend; it returns
// exactly one Directive. The receiver holds whatever private state the
// actor owns — Go's value/pointer receiver model is what keeps that state
// exclusive to the task, no locking required.
type Actor[M Msg] interface {
	Receive(ctx context.Context, msg M, self *Handle[M], sys *SystemHandle) Directive
}

// task is the owned receive loop: it consumes one mailbox and dispatches
// messages to user-supplied behavior, applying the returned directive.
type task[M Msg] struct {
	sys     *ActorSystem
	self    *Handle[M]
	mailbox *Mailbox[M]
	actor   Actor[M]
	done    chan struct{}
}

func newTask[M Msg](sys *ActorSystem, self *Handle[M], mb *Mailbox[M], a Actor[M]) *task[M] {
	return &task[M]{sys: sys, self: self, mailbox: mb, actor: a, done: make(chan struct{})}
}

func (t *task[M]) run() {
	defer close(t.done)
	defer t.recoverPanic()

	ctx := context.Background()
	sysHandle := t.sys.Handle()

	for {
		msg, ok, err := t.mailbox.Recv(ctx)
		if !ok {
			return
		}
		if err != nil {
			// Recv only errors on ctx cancellation; Background never cancels.
			continue
		}

		directive := t.actor.Receive(ctx, msg, t.self, sysHandle)
		switch directive {
		case Continue:
			// loop
		case Stop:
			t.mailbox.Close()
			return
		case RequestTermination:
			t.sys.requestTermination()
		}
	}
}

func (t *task[M]) recoverPanic() {
	if r := recover(); r != nil {
		logPanic(t.self.ID(), r, debug.Stack())
	}
}
