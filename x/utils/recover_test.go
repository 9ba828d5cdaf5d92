package utils

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

type panicHandler struct{}

func (panicHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	panic("check boom")
}

func (panicHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	panic("deliver boom")
}

func TestRecoveryTurnsPanicIntoError(t *testing.T) {
	r := NewRecovery()
	db := store.MemStore()
	ctx := custody.Context(context.Background())

	_, err := r.Check(ctx, db, &custodytest.Tx{}, panicHandler{})
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = r.Deliver(ctx, db, &custodytest.Tx{}, panicHandler{})
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestRecoveryPassesResults(t *testing.T) {
	r := NewRecovery()
	db := store.MemStore()
	ctx := custody.Context(context.Background())
	h := &custodytest.Handler{}

	_, err := r.Deliver(ctx, db, &custodytest.Tx{}, h)
	assert.Nil(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())
}
