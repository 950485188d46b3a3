package actor

import "github.com/race-actor/core/internal/logx"

// logPanic logs the actor id, the recovered value and a stack trace, then
// lets the task exit. No automatic restart — the task's done channel
// closes, but the actor's entry stays registered with the ActorSystem; it
// is not removed.
func logPanic(id string, r any, stack []byte) {
	logx.Printf("actor %s panicked: %v\n%s", id, r, stack)
}

func logDropped(id string, msgType string) {
	logx.Printf("actor %s mailbox full or closed, dropping %s", id, msgType)
}
