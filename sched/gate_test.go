package sched

import (
	"testing"
)

func TestState_Stop(t *testing.T) {
	s := NewState()

	if !s.MayCreate() {
		t.Fatal("fresh state should permit creation")
	}
	if s.Stopping() {
		t.Fatal("fresh state should not be stopping")
	}

	s.Stop()

	if s.MayCreate() {
		t.Fatal("MayCreate should fail after Stop")
	}
	if !s.Stopping() {
		t.Fatal("Stopping should report true after Stop")
	}
}

func TestState_SuppressBlockingNests(t *testing.T) {
	s := NewState()

	if s.BlockingSuppressed() {
		t.Fatal("blocking should start unsuppressed")
	}

	outer := s.SuppressBlocking(true)
	if outer {
		t.Fatal("outer scope should observe unsuppressed previous state")
	}
	if !s.BlockingSuppressed() {
		t.Fatal("blocking should be suppressed inside outer scope")
	}

	// Nested scope sees the already-suppressed state and restores it.
	inner := s.SuppressBlocking(true)
	if !inner {
		t.Fatal("inner scope should observe suppressed previous state")
	}
	s.SuppressBlocking(inner)
	if !s.BlockingSuppressed() {
		t.Fatal("restoring inner scope must keep outer suppression")
	}

	s.SuppressBlocking(outer)
	if s.BlockingSuppressed() {
		t.Fatal("restoring outer scope must re-enable blocking")
	}
}
