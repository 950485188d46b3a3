package actor

// Action is a construction-site-built closure that, given provider data D,
// performs an arbitrary send (or block of sends) on a subscriber handle
// the provider itself never has to name. It is how a provider publishes
// state updates without depending on the message type any particular
// client wants.
type Action[D any] func(data D) error

// Action2 is the binary form of Action, used for snapshot/initialization
// sends where one argument is provider data and the other is
// request-specific (e.g. a client address).
type Action2[A, B any] func(a A, b B) error

// NewSendAction builds an Action[D] that converts provider data into a
// message for handle h. Built at the call site where both D and the
// handle's message type M are known, so the provider stays generic over D
// alone.
func NewSendAction[D any, M Msg](h Sender[M], convert func(D) M) Action[D] {
	return func(data D) error {
		return h.Send(convert(data))
	}
}

// NewTrySendAction is NewSendAction using TrySend, never suspending.
func NewTrySendAction[D any, M Msg](h Sender[M], convert func(D) M) Action[D] {
	return func(data D) error {
		return h.TrySend(convert(data))
	}
}

// NewSendAction2 builds an Action2 that converts (provider data, request
// data) into a message for handle h.
func NewSendAction2[A, B any, M Msg](h Sender[M], convert func(A, B) M) Action2[A, B] {
	return func(a A, b B) error {
		return h.Send(convert(a, b))
	}
}

// ActionList is a heterogeneous-at-construction list of Action[D] entries:
// the site where provider data is fanned out to however many client
// message types the application wired up, without the provider knowing
// any of them.
type ActionList[D any] []Action[D]

// Execute runs every action with data, aggregating failures.
func (l ActionList[D]) Execute(data D) error {
	failed := 0
	for _, a := range l {
		if err := a(data); err != nil {
			failed++
		}
	}
	return iterOpResult("action list", len(l), failed)
}

// Action2List is the binary-arity counterpart of ActionList.
type Action2List[A, B any] []Action2[A, B]

// Execute runs every action with (a, b), aggregating failures.
func (l Action2List[A, B]) Execute(a A, b B) error {
	failed := 0
	for _, act := range l {
		if err := act(a, b); err != nil {
			failed++
		}
	}
	return iterOpResult("action2 list", len(l), failed)
}
