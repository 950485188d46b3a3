// Package actor implements a small actor runtime: typed mailboxes, actor
// handles, the receive-loop task, a supervising actor system, and the
// query/pub-sub/action/callback interaction patterns built on top of them.
//
// Actors never share state. Each owns a private mailbox and communicates
// exclusively by sending values that implement Msg. Every actor's mailbox
// additionally carries the seven system messages (Start, Pause, Resume,
// Terminate, Timer, Exec, Ping), which the owning ActorSystem and Handle
// deliver without the application constructing them directly.
package actor
