package handle

// QueryAs resolves a capability for h and asserts it to T. A resource that
// supports typ but returns a pointer of some other concrete type reports
// ErrNotSupported, same as one that never supported typ at all.
func QueryAs[T any](t *Table, h Handle, typ *Type) (T, error) {
	var zero T
	ptr, err := t.Query(h, typ)
	if err != nil {
		return zero, err
	}
	v, ok := ptr.(T)
	if !ok {
		return zero, ErrNotSupported
	}
	return v, nil
}
