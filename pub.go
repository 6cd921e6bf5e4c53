package vkv

// Config sets optional parameters for a Map.
type Config struct {
	// LookupCache memoizes historical lookups of sealed versions and
	// may not be shared with any other Map.
	LookupCache LookupCache
}

// New returns an empty map at version 0, with no versions sealed yet.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{
		heads: map[K]*diffNode[V]{},
		sizes: []uint64{0},
	}
}

// NewWithConfig returns an empty map configured according to config.
func NewWithConfig[K comparable, V comparable](config Config) *Map[K, V] {
	m := New[K, V]()
	m.cache = config.LookupCache
	return m
}

// Set adds or replaces the value for the given key in the current
// version. Repeated writes within one unsealed version coalesce into a
// single diff node.
func (m *Map[K, V]) Set(key K, value V) {
	cur := m.currentVersion()
	head := m.heads[key]
	switch {
	case head == nil:
		m.heads[key] = &diffNode[V]{value: value, version: cur}
		m.sizes[cur]++
	case head.version == cur:
		if head.deleted {
			m.sizes[cur]++
		}
		head.value = value
		head.deleted = false
	default:
		if head.deleted {
			m.sizes[cur]++
		}
		m.heads[key] = &diffNode[V]{value: value, version: cur, prev: head}
	}
	m.elide(key)
}

// Delete removes the key from the current version. Sealed versions
// that contained the key are unaffected. Deleting an absent or
// already-deleted key is a no-op.
func (m *Map[K, V]) Delete(key K) {
	head := m.heads[key]
	if head == nil {
		return
	}
	cur := m.currentVersion()
	if !head.deleted {
		m.sizes[cur]--
	}
	var zero V
	if head.version == cur {
		head.value = zero
		head.deleted = true
	} else {
		m.heads[key] = &diffNode[V]{version: cur, deleted: true, prev: head}
	}
	m.elide(key)
}

// Get returns the key's value in the current version, and whether the
// key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.GetAt(key, m.currentVersion())
}

// GetAt returns the key's value as of the given version, and whether
// the key was present then. A version beyond the current one reads the
// live state.
func (m *Map[K, V]) GetAt(key K, version uint64) (V, bool) {
	node := m.locate(key, version)
	if node == nil || node.deleted {
		var zero V
		return zero, false
	}
	return node.value, true
}

// Contains reports whether the key is present in the current version.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsAt reports whether the key was present as of the given
// version.
func (m *Map[K, V]) ContainsAt(key K, version uint64) bool {
	_, ok := m.GetAt(key, version)
	return ok
}

// Size returns the number of keys present in the current version.
func (m *Map[K, V]) Size() uint64 {
	return m.sizes[m.currentVersion()]
}

// SizeAt returns the number of keys present as of the given version. A
// version beyond the current one reads the live count.
func (m *Map[K, V]) SizeAt(version uint64) uint64 {
	if cur := m.currentVersion(); version > cur {
		version = cur
	}
	return m.sizes[version]
}

// MaxVersion returns the current version number: the one unsealed
// writes are attributed to, and the number the next Save returns.
func (m *Map[K, V]) MaxVersion() uint64 {
	return m.currentVersion()
}

// Save seals the current version and returns its number. Subsequent
// writes accumulate in a fresh version, which starts with the same
// contents and live-key count as the one just sealed.
func (m *Map[K, V]) Save() uint64 {
	sealed := m.currentVersion()
	m.sizes = append(m.sizes, m.sizes[sealed])
	return sealed
}

// Clone returns an independent map sharing all sealed history with
// this one. Only current-version heads are copied, since they are the
// only mutable nodes, so a clone is cheap regardless of history depth.
// The two maps, and their version numbering, evolve independently from
// this point. The clone starts without a LookupCache: cache entries
// are only valid for the map that populated them.
func (m *Map[K, V]) Clone() *Map[K, V] {
	cur := m.currentVersion()
	heads := make(map[K]*diffNode[V], len(m.heads))
	for key, head := range m.heads {
		if head.version == cur {
			copied := *head
			heads[key] = &copied
		} else {
			heads[key] = head
		}
	}
	return &Map[K, V]{
		heads: heads,
		sizes: append([]uint64(nil), m.sizes...),
	}
}
