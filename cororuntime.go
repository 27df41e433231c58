package cororuntime

import (
	"github.com/wippyai/coro-runtime/handle"
	"github.com/wippyai/coro-runtime/sched"
)

// The process-wide table and scheduler state. Every runtime facility in
// this process shares these; libraries that want isolation create their own
// handle.Table instead.
var (
	state = sched.NewState()
	table = handle.NewTable(handle.WithGate(state))
)

// Make mints a handle backed by vfs on the process-wide table.
func Make(vfs handle.VFS) (handle.Handle, error) {
	return table.Create(vfs)
}

// Dup mints a second handle sharing h's resource.
func Dup(h handle.Handle) (handle.Handle, error) {
	return table.Dup(h)
}

// Query resolves a capability pointer for h.
func Query(h handle.Handle, typ *handle.Type) (any, error) {
	return table.Query(h, typ)
}

// QueryAs resolves a capability for h and asserts it to T.
func QueryAs[T any](h handle.Handle, typ *handle.Type) (T, error) {
	return handle.QueryAs[T](table, h, typ)
}

// Close releases h, tearing the resource down when this was its last
// reference.
func Close(h handle.Handle) error {
	return table.Close(h)
}

// Stop begins orderly shutdown: Make starts failing with ErrCancelled while
// Dup, Query and Close keep working so teardown protocols can complete.
func Stop() {
	state.Stop()
}

// Shutdown stops the runtime and closes every handle still live on the
// process-wide table.
func Shutdown() error {
	state.Stop()
	return table.Shutdown()
}

// Default returns the process-wide table, for callers that need the full
// handle.Table API (observers, iteration).
func Default() *handle.Table {
	return table
}

// State returns the process-wide scheduler state. The cooperative scheduler
// consults it before suspending a coroutine.
func State() *sched.State {
	return state
}
