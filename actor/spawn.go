package actor

import (
	"context"
	"runtime"
	"time"
)

// Sleep suspends the calling goroutine for d, honoring ctx cancellation —
// the Go-idiomatic analogue of the source's tokio::time::sleep.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Spawn runs fn on a new goroutine. Unlike a Tokio task handle, Go gives no
// portable way to observe completion without an explicit channel, so Spawn
// returns one the caller may ignore.
func Spawn(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	return done
}

// SpawnBlocking runs fn on a dedicated goroutine, mirroring the source's
// spawn_blocking escape hatch for CPU-bound or syscall-heavy work that
// would otherwise monopolize the scheduler; Go's goroutines are already
// M:N scheduled onto OS threads, so this is a naming convenience rather
// than a distinct thread pool.
func SpawnBlocking(fn func()) <-chan struct{} {
	return Spawn(fn)
}

// Yield hints the scheduler to run other goroutines before this one
// continues.
func Yield() { runtime.Gosched() }
