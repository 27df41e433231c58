package handle

// EventType classifies handle lifecycle events.
type EventType uint8

const (
	// HandleCreated fires when Create issues a new handle.
	HandleCreated EventType = iota
	// HandleDuplicated fires when Dup issues an additional handle for an
	// existing resource.
	HandleDuplicated
	// HandleReleased fires when a Close drops one reference while others
	// remain; the resource is untouched.
	HandleReleased
	// HandleClosed fires when the last Close tears the resource down.
	HandleClosed
)

// Event describes one handle lifecycle transition. The Handle value in a
// HandleReleased or HandleClosed event is already free and must not be
// dereferenced through the table.
type Event struct {
	VFS    VFS
	Handle Handle
	Type   EventType
}

// Observer receives handle lifecycle events. Notification is synchronous,
// on the table's own execution context; observers must not block and may
// not mutate the table from the callback.
type Observer interface {
	OnHandleEvent(Event)
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(e Event) {
	for _, o := range t.observers {
		o.OnHandleEvent(e)
	}
}
