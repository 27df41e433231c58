// Package cororuntime provides the handle layer of a cooperative-concurrency
// runtime: a process-wide table issuing small integer handles that stand in
// for arbitrary runtime-managed resources.
//
// Resource identity, lifetime, polymorphic dispatch and reference counting
// all meet in this layer. A resource kind participates by implementing the
// capability-table contract (handle.VFS) and registering instances with the
// table. What a handle means, the I/O behind it, and the scheduling around
// it all live with the resource implementations and the scheduler, outside
// this module.
//
// # Architecture Overview
//
//	coro-runtime/        Root package: process-wide default table facade
//	├── handle/          Handle table: slot array, free list, capability
//	│                    dispatch with per-slot query cache, refcounted
//	│                    teardown, lifecycle observers
//	└── sched/           Scheduler gate boundary: creation gate and the
//	                     nestable blocking-suppression toggle
//
// # Quick Start
//
// Define a resource by embedding handle.Base and implementing Query/Close,
// then register it:
//
//	h, err := cororuntime.Make(res)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cororuntime.Close(h)
//
//	w, err := cororuntime.QueryAs[Writer](h, TypeWriter)
//	if err != nil {
//	    // handle.ErrNotSupported: the resource lacks this capability
//	}
//
// # Concurrency
//
// The runtime assumes a single logical thread of cooperative execution.
// Neither the tables nor the scheduler state are safe for concurrent use
// from independent goroutines.
package cororuntime
