// Package handle implements the handle table underlying the cooperative
// runtime: a process-wide growable slot array that issues small integer
// handles standing in for arbitrary runtime-managed resources.
//
// Every runtime facility (sockets, timers, channels, coroutine groups)
// participates by registering a capability table (VFS) with this layer.
// The layer stores the VFS opaquely; it never interprets what a handle
// represents, performs no I/O, and does no scheduling.
//
// # Lifecycle
//
// A resource implementation embeds Base and registers itself:
//
//	type timer struct {
//	    handle.Base
//	    deadline time.Time
//	}
//
//	h, err := table.Create(tm)     // refcount 1
//	h2, err := table.Dup(h)        // refcount 2, same resource
//	err = table.Close(h)           // refcount 1, resource untouched
//	err = table.Close(h2)          // refcount 0, tm.Close() runs
//
// Close of the last reference runs the resource's teardown with blocking
// suppressed through the scheduler gate, so teardown can never suspend the
// execution context that invoked it.
//
// # Capability queries
//
// Query casts a handle to a specific capability interface, identified by a
// Type token. Each slot caches its most recent successful resolution, so
// hot paths that re-resolve the same interface on every call skip the
// dispatch:
//
//	w, err := handle.QueryAs[MsgWriter](table, h, TypeMsgWriter)
//
// # Handle reuse
//
// Handles carry no generation tag. Once closed, a handle's integer value
// may be reissued by a later Create for an unrelated resource; retaining a
// handle past its Close is a programming error that the table can only
// sometimes detect (ErrBadHandle).
//
// # Thread safety
//
// A Table is NOT safe for concurrent use. It assumes the runtime's single
// logical thread of cooperative execution. Reentrant use from inside a
// resource's Close callback is supported.
package handle
