package orm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/custody/store"
)

func TestSequenceIncrements(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("vault", SeqID)

	for i := int64(1); i <= 10; i++ {
		val, err := s.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, i, val)
	}

	latest, raw, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), latest)
	assert.Equal(t, EncodeSequence(10), raw)
}

func TestSequenceBytesOrdered(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("escrow", SeqID)

	prev, err := s.NextVal(db)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		next, err := s.NextVal(db)
		require.NoError(t, err)
		if bytes.Compare(prev, next) >= 0 {
			t.Fatalf("sequence keys not ascending: %X >= %X", prev, next)
		}
		prev = next
	}
}

func TestSequencesIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("vault", SeqID)
	b := NewSequence("escrow", SeqID)

	av, err := a.NextInt(db)
	require.NoError(t, err)
	bv, err := b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), av)
	assert.Equal(t, int64(1), bv)
}
