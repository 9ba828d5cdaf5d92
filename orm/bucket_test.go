package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/store"
)

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() { NewBucket("l33t", NewCounter(nil, 0)) })
	assert.Panics(t, func() { NewBucket("ab", NewCounter(nil, 0)) })
	assert.NotPanics(t, func() { NewBucket("good", NewCounter(nil, 0)) })
}

func TestBucketSaveGet(t *testing.T) {
	db := store.MemStore()
	bucket := NewCounterBucket()

	// a missing key returns nil, no error
	obj, err := bucket.Get(db, []byte("none"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	require.NoError(t, bucket.Save(db, NewCounter([]byte("first"), 44)))

	cntr, err := bucket.GetCounter(db, []byte("first"))
	require.NoError(t, err)
	require.NotNil(t, cntr)
	assert.Equal(t, int64(44), cntr.Count)

	// saving without a key is rejected
	err = bucket.Save(db, NewCounter(nil, 7))
	assert.Error(t, err)

	// delete removes it
	require.NoError(t, bucket.Delete(db, []byte("first")))
	obj, err = bucket.Get(db, []byte("first"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketKeysDoNotCollide(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("aaaa", NewCounter(nil, 0))
	two := NewBucket("bbbb", NewCounter(nil, 0))

	require.NoError(t, one.Save(db, NewCounter([]byte("key"), 1)))
	require.NoError(t, two.Save(db, NewCounter([]byte("key"), 2)))

	o1, err := one.Get(db, []byte("key"))
	require.NoError(t, err)
	o2, err := two.Get(db, []byte("key"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), o1.Value().(*Counter).Count)
	assert.Equal(t, int64(2), o2.Value().(*Counter).Count)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	bucket := NewCounterBucket()
	require.NoError(t, bucket.Save(db, NewCounter([]byte("aa"), 5)))
	require.NoError(t, bucket.Save(db, NewCounter([]byte("ab"), 6)))
	require.NoError(t, bucket.Save(db, NewCounter([]byte("zz"), 7)))

	qr := custody.NewQueryRouter()
	bucket.Register("counters", qr)
	h := qr.Handler("/counters")
	require.NotNil(t, h)

	// exact key query
	models, err := h.Query(db, custody.KeyQueryMod, []byte("aa"))
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, bucket.DBKey([]byte("aa")), models[0].Key)

	// miss returns empty, no error
	models, err = h.Query(db, custody.KeyQueryMod, []byte("missing"))
	require.NoError(t, err)
	assert.Len(t, models, 0)

	// prefix query
	models, err = h.Query(db, custody.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	assert.Len(t, models, 2)

	// unknown modifier is an error
	_, err = h.Query(db, "fuzzy", []byte("a"))
	assert.Error(t, err)
}

func TestBucketParseBadData(t *testing.T) {
	bucket := NewCounterBucket()
	_, err := bucket.Parse([]byte("k"), []byte("not 8 bytes"))
	assert.Error(t, err)
}
