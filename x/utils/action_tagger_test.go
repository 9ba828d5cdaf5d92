package utils

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
)

func TestActionTagger(t *testing.T) {
	tagger := NewActionTagger()
	ctx := custody.Context(context.Background())
	h := &custodytest.Handler{}
	tx := &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "escrow/withdraw"}}

	res, err := tagger.Deliver(ctx, nil, tx, h)
	assert.Nil(t, err)
	if len(res.Tags) != 1 {
		t.Fatalf("want one tag, got %d", len(res.Tags))
	}
	assert.Equal(t, []byte(ActionKey), res.Tags[0].Key)
	assert.Equal(t, []byte("escrow/withdraw"), res.Tags[0].Value)
}

func TestActionTaggerCheckPassthrough(t *testing.T) {
	tagger := NewActionTagger()
	ctx := custody.Context(context.Background())
	h := &custodytest.Handler{}
	tx := &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "vault/deposit"}}

	_, err := tagger.Check(ctx, nil, tx, h)
	assert.Nil(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
}
