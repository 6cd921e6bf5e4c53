/*
Package vkv provides a versioned, diffable, in-memory map.  A vkv.Map
behaves like a Go builtin map, except that its state can be sealed at
any point into a numbered snapshot, and the value, presence, or
element count of any key can later be read back as of any snapshot,
without ever having copied the map.

# Uses

- Cheap undo/audit access to prior states of mutable configuration

- History of form edits, materialized views, simple MVCC-style caches

- Diffing two snapshots to see what changed between them

# How it works

Instead of copying entries per snapshot, the map keeps one chain of
diff nodes per key, newest first.  Each node records the value (or a
deletion) and the snapshot number at which it became effective, so a
key's chain only grows when its observable state actually changes;
rewriting a key with the value it already had costs nothing.  A
historical read walks the key's chain to the first node at or below
the requested snapshot.  Element counts are kept per snapshot in a
ledger, so Size of any version is a single slice read.

# Concurrency

A Map is not safe for concurrent use; callers that share one must
serialize all operations externally.  Clone() produces an independent
map that shares all sealed history structurally, so handing each
goroutine its own clone is a cheap alternative to locking.
*/
package vkv
