// Package sched holds the scheduler-facing state the handle layer depends
// on: a gate that rejects resource creation once orderly shutdown has begun,
// and a save/restore toggle that suppresses blocking operations while a
// resource is being torn down.
//
// The cooperative scheduler itself lives outside this module. Only its
// boundary is modeled here; State is the in-process implementation used
// when no scheduler is wired in.
package sched
