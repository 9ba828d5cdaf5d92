package store

import "github.com/iov-one/custody"

// Aliases for all storage types defined in the root package, for
// shorter names everywhere.

type ReadOnlyKVStore = custody.ReadOnlyKVStore
type KVStore = custody.KVStore
type SetDeleter = custody.SetDeleter
type Batch = custody.Batch
type Iterator = custody.Iterator
type CacheableKVStore = custody.CacheableKVStore
type KVCacheWrap = custody.KVCacheWrap
type CommitKVStore = custody.CommitKVStore
type CommitID = custody.CommitID
type Model = custody.Model

// Pair constructs a model from a key-value pair.
func Pair(key, value []byte) Model {
	return custody.Pair(key, value)
}
