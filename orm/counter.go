package orm

import (
	"encoding/binary"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

var _ CloneableData = (*Counter)(nil)

// Counter is a small model to test buckets with. It stores an int64
// as 8 big-endian bytes.
type Counter struct {
	Count int64
}

// Marshal encodes the counter value
func (c *Counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

// Unmarshal decodes the counter value
func (c *Counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "expected 8 bytes, got %d", len(raw))
	}
	c.Count = int64(binary.BigEndian.Uint64(raw))
	return nil
}

// Validate is always successful
func (c *Counter) Validate() error {
	return nil
}

// Copy produces a new copy to fulfill the CloneableData interface
func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}

// NewCounter creates an object wrapping a counter value
func NewCounter(key []byte, count int64) Object {
	return NewSimpleObj(key, &Counter{Count: count})
}

// CounterBucket is a type-safe wrapper around a bucket of counters
type CounterBucket struct {
	Bucket
}

// NewCounterBucket initializes a CounterBucket
func NewCounterBucket() CounterBucket {
	return CounterBucket{
		Bucket: NewBucket("cntr", NewCounter(nil, 0)),
	}
}

// GetCounter loads a counter, returns nil if not present
func (b CounterBucket) GetCounter(db custody.ReadOnlyKVStore, key []byte) (*Counter, error) {
	obj, err := b.Get(db, key)
	if err != nil || obj == nil {
		return nil, err
	}
	cntr, ok := obj.Value().(*Counter)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return cntr, nil
}
