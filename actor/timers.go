package actor

import "time"

// StartOneshotTimer enqueues Timer{id} after delay, best-effort (dropped,
// with a log line, if the mailbox is full or closed by the time it fires). Returns
// a cancel function that stops the timer goroutine if it hasn't fired yet.
func (h *Handle[M]) StartOneshotTimer(id int64, delay time.Duration, wrap func(Timer) M) func() {
	timer := time.NewTimer(delay)
	done := make(chan struct{})
	go func() {
		select {
		case <-timer.C:
			if err := h.mailbox.TrySend(wrap(Timer{ID: id})); err != nil {
				logDropped(h.id, "Timer")
			}
		case <-done:
			timer.Stop()
		}
	}()
	return func() { close(done) }
}

// StartRepeatTimer enqueues Timer{id} every interval until the mailbox
// closes or the returned cancel function is called.
func (h *Handle[M]) StartRepeatTimer(id int64, interval time.Duration, wrap func(Timer) M) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if h.mailbox.Closed() {
					return
				}
				if err := h.mailbox.TrySend(wrap(Timer{ID: id})); err != nil {
					logDropped(h.id, "Timer")
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
