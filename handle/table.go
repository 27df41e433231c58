package handle

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/coro-runtime/sched"
)

// initialSlots is the slot array's first allocation; growth doubles from
// there and never shrinks.
const initialSlots = 256

// freeEnd terminates the free list.
const freeEnd Handle = -1

// slot is one entry of the slot array. A slot is active while vfs is
// non-nil; next is meaningful only while the slot is free, where it links
// the slot into the free list.
type slot struct {
	vfs   VFS
	next  Handle
	ctype *Type // capability type of the most recent successful Query
	cptr  any   // capability pointer cached for ctype
}

func (s *slot) active() bool {
	return s.vfs != nil
}

// Option configures a Table.
type Option func(*Table)

// WithGate wires the scheduler gate the table consults. Create checks
// MayCreate; Close suppresses blocking around resource teardown. The
// default is a fresh sched.State owned by the table alone.
func WithGate(g sched.Gate) Option {
	return func(t *Table) { t.gate = g }
}

// WithLimit caps the slot array at n slots. Growth past the cap fails with
// ErrOutOfMemory. Zero means unlimited.
func WithLimit(n int) Option {
	return func(t *Table) { t.limit = n }
}

// WithObserver subscribes o before the table issues its first handle.
func WithObserver(o Observer) Option {
	return func(t *Table) { t.observers = append(t.observers, o) }
}

// Table issues integer handles standing in for runtime-managed resources.
// Slots are recycled through an intrusive free list threaded through the
// slot array itself, so allocation and release are O(1) with no auxiliary
// storage.
//
// A Table is NOT safe for concurrent use. It belongs to a single logical
// thread of cooperative execution; reentrant calls from inside a resource's
// Close callback are fine, parallel calls from independent goroutines are
// not.
type Table struct {
	slots     []slot
	free      Handle
	gate      sched.Gate
	limit     int
	observers []Observer
}

// NewTable creates an empty table. The slot array is allocated lazily on
// the first Create.
func NewTable(opts ...Option) *Table {
	t := &Table{
		free: freeEnd,
		gate: sched.NewState(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// lookup validates h and returns its slot. The pointer is invalidated by
// anything that can grow the slot array, so callers must not hold it
// across alloc or across a resource callback.
func (t *Table) lookup(h Handle) (*slot, error) {
	if h < 0 || int(h) >= len(t.slots) || !t.slots[h].active() {
		return nil, ErrBadHandle
	}
	return &t.slots[h], nil
}

// grow doubles the slot array (256 to start) and links the new slots into
// the free list in ascending order. Existing handles stay valid: slots are
// addressed by index, never by pointer held across growth.
func (t *Table) grow() error {
	sz := initialSlots
	if n := len(t.slots); n > 0 {
		sz = n * 2
	}
	if t.limit > 0 && sz > t.limit {
		if len(t.slots) >= t.limit {
			return ErrOutOfMemory
		}
		sz = t.limit
	}
	next := make([]slot, sz)
	copy(next, t.slots)
	for i := len(t.slots); i < sz-1; i++ {
		next[i].next = Handle(i + 1)
	}
	next[sz-1].next = freeEnd
	t.free = Handle(len(t.slots))
	t.slots = next
	Logger().Debug("slot array grown", zap.Int("slots", sz))
	return nil
}

// alloc pops the next free slot and binds it to vfs with an empty query
// cache. It does not touch the reference count; Create and Dup manage it.
func (t *Table) alloc(vfs VFS) (Handle, error) {
	if t.free == freeEnd {
		if err := t.grow(); err != nil {
			return 0, err
		}
	}
	h := t.free
	s := &t.slots[h]
	t.free = s.next
	s.vfs = vfs
	s.ctype = nil
	s.cptr = nil
	return h, nil
}

// release clears a slot's binding and cache and pushes it onto the free
// list.
func (t *Table) release(h Handle) {
	s := &t.slots[h]
	s.vfs = nil
	s.ctype = nil
	s.cptr = nil
	s.next = t.free
	t.free = h
}

// Create mints a handle backed by vfs. The new handle holds the resource's
// sole reference; the resource's Close runs when that reference (and any
// added by Dup) is gone.
//
// Create fails with ErrCancelled once orderly shutdown has begun, and with
// ErrOutOfMemory when growth would exceed the table's slot limit. Failed
// creation leaves the table untouched.
func (t *Table) Create(vfs VFS) (Handle, error) {
	if vfs == nil {
		return 0, ErrInvalidArgument
	}
	if !t.gate.MayCreate() {
		return 0, ErrCancelled
	}
	h, err := t.alloc(vfs)
	if err != nil {
		return 0, err
	}
	vfs.base().refs = 1
	t.notify(Event{Type: HandleCreated, Handle: h, VFS: vfs})
	return h, nil
}

// Dup mints a second handle bound to the same resource as h. The two
// handles are independent identifiers sharing one resource; the resource's
// Close runs only after both are closed.
//
// Dup never consults the shutdown gate: duplicating an existing resource
// stays possible during shutdown so teardown protocols can complete. It is
// all-or-nothing; if slot allocation fails the original handle and the
// reference count are unchanged.
func (t *Table) Dup(h Handle) (Handle, error) {
	s, err := t.lookup(h)
	if err != nil {
		return 0, err
	}
	vfs := s.vfs
	nh, err := t.alloc(vfs)
	if err != nil {
		return 0, err
	}
	vfs.base().refs++
	t.notify(Event{Type: HandleDuplicated, Handle: nh, VFS: vfs})
	return nh, nil
}

// Query resolves a capability pointer for h. The most recent successful
// resolution is cached per slot, so repeated queries for the same type on a
// hot path skip the dispatch. ErrNotSupported reports that the resource
// does not implement typ; the cache is left unchanged in that case.
func (t *Table) Query(h Handle, typ *Type) (any, error) {
	s, err := t.lookup(h)
	if err != nil {
		return nil, err
	}
	if s.cptr != nil && s.ctype == typ {
		return s.cptr, nil
	}
	vfs := s.vfs
	ptr := vfs.Query(typ)
	if ptr == nil {
		return nil, ErrNotSupported
	}
	// The dispatch may have re-entered the table and moved the slot
	// array; re-index, and only cache if the slot still holds this
	// resource.
	if s := &t.slots[h]; s.vfs == vfs {
		s.ctype = typ
		s.cptr = ptr
	}
	return ptr, nil
}

// Close releases h. While other handles still reference the resource it
// only drops this handle's share; the last Close invokes the resource's
// teardown with blocking suppressed for the duration of the callback.
//
// Either way h itself becomes invalid and its slot returns to the free
// list. Close never consults the shutdown gate, and a teardown callback may
// re-enter the table to close or duplicate other handles.
func (t *Table) Close(h Handle) error {
	s, err := t.lookup(h)
	if err != nil {
		return err
	}
	vfs := s.vfs
	last := vfs.base().refs <= 1
	if last {
		t.teardown(vfs)
		vfs.base().refs = 0
	} else {
		vfs.base().refs--
	}
	// The callback may have re-entered the table; s is stale here.
	t.release(h)
	ev := HandleReleased
	if last {
		ev = HandleClosed
	}
	t.notify(Event{Type: ev, Handle: h, VFS: vfs})
	return nil
}

// teardown invokes the resource's Close under the blocking-suppression
// toggle. Save/restore rather than set/clear, so teardown nested inside
// another teardown keeps the outer scope's suppression.
func (t *Table) teardown(vfs VFS) {
	prev := t.gate.SuppressBlocking(true)
	defer t.gate.SuppressBlocking(prev)
	vfs.Close()
}

// Len returns the number of active handles.
func (t *Table) Len() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].active() {
			n++
		}
	}
	return n
}

// Each calls fn for every active handle in ascending order until fn
// returns false. fn must not mutate the table.
func (t *Table) Each(fn func(Handle, VFS) bool) {
	for i := range t.slots {
		if t.slots[i].active() {
			if !fn(Handle(i), t.slots[i].vfs) {
				return
			}
		}
	}
}

// Shutdown closes every live handle and releases the slot storage. Each
// resource's teardown runs once its last handle is reached, exactly as if
// the owners had called Close themselves. Intended as best-effort cleanup
// at process exit; the table is empty but usable again afterwards.
func (t *Table) Shutdown() error {
	var handles []Handle
	t.Each(func(h Handle, _ VFS) bool {
		handles = append(handles, h)
		return true
	})
	var err error
	for _, h := range handles {
		// A teardown callback may have already closed peers pending
		// in this list.
		if int(h) < len(t.slots) && t.slots[h].active() {
			err = multierr.Append(err, t.Close(h))
		}
	}
	t.slots = nil
	t.free = freeEnd
	Logger().Debug("handle table shut down", zap.Int("closed", len(handles)))
	return err
}
