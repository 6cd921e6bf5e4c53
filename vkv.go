package vkv

// Map is a mutable map whose prior states remain readable after
// Save() seals them into numbered versions.
type Map[K comparable, V comparable] struct {
	// heads holds the newest diff node per key; nil entry never occurs,
	// a key with no chain is simply absent from the map.
	heads map[K]*diffNode[V]
	// sizes[v] is the live-key count as of version v; the last entry
	// tracks the unsealed current version and is updated in place.
	sizes []uint64
	cache LookupCache
}

// diffNode records one observable state transition of a key: either a
// value or a deletion, effective from the given version onward.
// Chains are ordered by strictly decreasing version from head to tail.
type diffNode[V comparable] struct {
	value   V
	deleted bool
	version uint64
	prev    *diffNode[V]
}

// lookupKey keys cached historical lookups by key and target version.
type lookupKey[K comparable] struct {
	key     K
	version uint64
}

func (m *Map[K, V]) currentVersion() uint64 {
	return uint64(len(m.sizes) - 1)
}

// sameState reports whether two adjacent nodes represent the same
// observable state. Deletion nodes carry the zero value, so comparing
// the pair directly is sufficient.
func sameState[V comparable](a, b *diffNode[V]) bool {
	return a.deleted == b.deleted && a.value == b.value
}

// elide discards the key's head node if it is redundant with its
// predecessor, keeping every chain node a genuine state transition.
// Only the head can be redundant, and only right after a mutation.
func (m *Map[K, V]) elide(key K) {
	head := m.heads[key]
	if head == nil || head.prev == nil {
		return
	}
	if sameState(head, head.prev) {
		m.heads[key] = head.prev
	}
}

// locate finds the diff node effective at the given version, or nil if
// the key did not exist then. Versions at or beyond the current one
// resolve to the live head.
func (m *Map[K, V]) locate(key K, version uint64) *diffNode[V] {
	if version >= m.currentVersion() {
		return m.walk(key, version)
	}
	// Lookups below the current version can never change, so they are
	// safe to memoize.
	if m.cache != nil {
		if node, ok := m.cache.Get(lookupKey[K]{key, version}); ok {
			return node.(*diffNode[V])
		}
	}
	node := m.walk(key, version)
	if m.cache != nil {
		m.cache.Add(lookupKey[K]{key, version}, node)
	}
	return node
}

// walk scans the key's chain from the head for the first node at or
// below the target version. Linear is fine: a chain is bounded by the
// number of effective changes to one key, not by write calls.
func (m *Map[K, V]) walk(key K, version uint64) *diffNode[V] {
	for node := m.heads[key]; node != nil; node = node.prev {
		if node.version <= version {
			return node
		}
	}
	return nil
}
