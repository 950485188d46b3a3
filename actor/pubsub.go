package actor

import (
	"sync"
	"time"
)

// Subscriptions is the provider-side pattern for publish/subscribe: an
// ordered collection of subscriber endpoints addressed by a common message
// type M. Subscribers register by sending a Subscribe(endpoint) message;
// on state change the provider calls Publish, which sends a copy of the
// message to every subscriber. Failed sends do not abort the publish; the
// aggregate failure count comes back as a KindIterOpFailed error.
type Subscriptions[M Msg] struct {
	mu   sync.Mutex
	subs []DynSender[M]
}

// NewSubscriptions returns an empty subscription list.
func NewSubscriptions[M Msg]() *Subscriptions[M] {
	return &Subscriptions[M]{}
}

// Add registers a subscriber endpoint.
func (s *Subscriptions[M]) Add(sub DynSender[M]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

// Remove drops every subscriber whose ID matches id (a subscriber may
// unsubscribe, or the provider may prune one after repeated failures).
func (s *Subscriptions[M]) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.ID() != id {
			kept = append(kept, sub)
		}
	}
	s.subs = kept
}

// Len reports the current subscriber count.
func (s *Subscriptions[M]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Subscriptions[M]) snapshot() []DynSender[M] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DynSender[M], len(s.subs))
	copy(out, s.subs)
	return out
}

// Publish sends msg to every subscriber. Failed sends are counted, not
// propagated individually; publishing continues past a failure.
func (s *Subscriptions[M]) Publish(msg M) error {
	subs := s.snapshot()
	failed := 0
	for _, sub := range subs {
		if err := sub.Send(msg); err != nil {
			failed++
		}
	}
	return iterOpResult("publish", len(subs), failed)
}

// PublishWithTimeout is Publish bounded by d per subscriber.
func (s *Subscriptions[M]) PublishWithTimeout(msg M, d time.Duration) error {
	subs := s.snapshot()
	failed := 0
	for _, sub := range subs {
		if err := sub.SendWithTimeout(msg, d); err != nil {
			failed++
		}
	}
	return iterOpResult("publish", len(subs), failed)
}

// TryPublish is Publish using TrySend, never suspending.
func (s *Subscriptions[M]) TryPublish(msg M) error {
	subs := s.snapshot()
	failed := 0
	for _, sub := range subs {
		if err := sub.TrySend(msg); err != nil {
			failed++
		}
	}
	return iterOpResult("publish", len(subs), failed)
}
