package vkv

import "fmt"

// DiffIter invokes the given callback for every key whose state
// differs between two versions. Keys present only in newVersion are
// reported with added=true, keys present only in oldVersion with
// removed=true, and added==removed==true signifies keys whose values
// have changed. The iteration is in no particular order and stops if
// the callback returns keepGoing==false or an error. Either version
// number may be beyond the current version, in which case it reads the
// live state.
func (m *Map[K, V]) DiffIter(
	oldVersion, newVersion uint64,
	f func(added, removed bool,
		key K, addedValue, removedValue V,
	) (bool, error),
) error {
	var zero V
	for key := range m.heads {
		o := m.locate(key, oldVersion)
		n := m.locate(key, newVersion)
		if o == n {
			continue
		}
		oldLive := o != nil && !o.deleted
		newLive := n != nil && !n.deleted
		var keepGoing bool
		var err error
		switch {
		case oldLive && newLive:
			if o.value == n.value {
				continue
			}
			keepGoing, err = f(true, true, key, n.value, o.value)
		case newLive:
			keepGoing, err = f(true, false, key, n.value, zero)
		case oldLive:
			keepGoing, err = f(false, true, key, zero, o.value)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("callback: %w", err)
		}
		if !keepGoing {
			return nil
		}
	}
	return nil
}
