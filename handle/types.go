package handle

// Handle is an opaque reference to an active slot in a Table. Handles are
// small non-negative integers; a closed handle's value may be reissued by a
// later Create, so callers must not retain handle values past Close.
type Handle int32

// Type identifies a capability interface that can be requested from a
// resource via Query. Tokens compare by identity: two NewType calls return
// distinct types even when the names match. The name is used only in
// diagnostics.
type Type struct {
	name string
}

// NewType creates a capability type token. Tokens are typically created
// once per capability interface and shared as package-level variables:
//
//	var TypeMsgWriter = handle.NewType("msg-writer")
func NewType(name string) *Type {
	return &Type{name: name}
}

func (t *Type) String() string {
	return t.name
}

// VFS is the capability table a resource implementation registers with the
// handle layer. The table never interprets the resource behind it; it only
// dispatches Query, invokes Close exactly once when the last handle is
// released, and maintains the shared reference count.
//
// Implementations embed Base, which carries the reference count:
//
//	type socket struct {
//	    handle.Base
//	    // ...
//	}
//
//	func (s *socket) Query(typ *handle.Type) any { ... }
//	func (s *socket) Close()                     { ... }
type VFS interface {
	// Query returns the resource's implementation of the requested
	// capability, or nil if the capability is not supported.
	Query(typ *Type) any

	// Close tears the resource down. The handle layer calls it exactly
	// once, from the Close of the last handle bound to the resource,
	// with blocking suppressed for the duration of the call.
	Close()

	base() *Base
}

// Base carries the reference count shared by every handle bound to one
// resource. It must be embedded in every VFS implementation; only the
// handle table mutates it.
type Base struct {
	refs int32
}

func (b *Base) base() *Base {
	return b
}

// Refs reports the number of live handles currently bound to the resource.
func (b *Base) Refs() int32 {
	return b.refs
}
