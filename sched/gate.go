package sched

// Gate is the scheduler interface the handle table consults. Create checks
// MayCreate before allocating; Close wraps resource teardown in a
// SuppressBlocking(true)/restore pair so a close callback can never suspend
// the execution context that is tearing it down.
type Gate interface {
	// MayCreate reports whether new resources may still be created.
	// It returns false once orderly shutdown has begun.
	MayCreate() bool

	// SuppressBlocking sets the blocking-suppression toggle and returns
	// the previous value. Callers restore the returned value when done,
	// which makes nested suppression scopes compose correctly.
	SuppressBlocking(on bool) (prev bool)
}

// State is the in-process cooperative scheduler state. It assumes a single
// logical thread of control and is not safe for concurrent use.
type State struct {
	stopping   bool
	noBlocking bool
}

// NewState returns a State that permits creation and blocking.
func NewState() *State {
	return &State{}
}

// Stop begins orderly shutdown. From this point MayCreate returns false;
// duplicating and closing existing handles keeps working so teardown can
// run to completion.
func (s *State) Stop() {
	s.stopping = true
}

// Stopping reports whether Stop has been called.
func (s *State) Stopping() bool {
	return s.stopping
}

// MayCreate implements Gate.
func (s *State) MayCreate() bool {
	return !s.stopping
}

// SuppressBlocking implements Gate.
func (s *State) SuppressBlocking(on bool) bool {
	prev := s.noBlocking
	s.noBlocking = on
	return prev
}

// BlockingSuppressed reports whether blocking operations are currently
// forbidden. The scheduler consults this before suspending a coroutine.
func (s *State) BlockingSuppressed() bool {
	return s.noBlocking
}
