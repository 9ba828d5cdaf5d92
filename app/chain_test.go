package app

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestChainDecorators(t *testing.T) {
	h := &custodytest.Handler{}
	d1 := &custodytest.Decorator{}
	d2 := &custodytest.Decorator{}

	stack := ChainDecorators(d1, nil, d2).WithHandler(h)
	ctx := custody.Context(context.Background())

	_, err := stack.Check(ctx, nil, &custodytest.Tx{})
	assert.Nil(t, err)
	_, err = stack.Deliver(ctx, nil, &custodytest.Tx{})
	assert.Nil(t, err)

	assert.Equal(t, 2, d1.CallCount())
	assert.Equal(t, 2, d2.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainAbortsOnDecoratorError(t *testing.T) {
	h := &custodytest.Handler{}
	fail := errors.Wrap(errors.ErrUnauthorized, "no signature")
	d1 := &custodytest.Decorator{}
	d2 := &custodytest.Decorator{CheckErr: fail, DeliverErr: fail}

	stack := ChainDecorators(d1, d2).WithHandler(h)
	ctx := custody.Context(context.Background())

	_, err := stack.Deliver(ctx, nil, &custodytest.Tx{})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// the wrapped handler is never reached
	assert.Equal(t, 0, h.CallCount())
	assert.Equal(t, 1, d1.DeliverCallCount())
}

func TestChainCanGrow(t *testing.T) {
	h := &custodytest.Handler{}
	d1 := &custodytest.Decorator{}
	d2 := &custodytest.Decorator{}

	stack := ChainDecorators(d1).Chain(d2).WithHandler(h)
	ctx := custody.Context(context.Background())

	_, err := stack.Check(ctx, nil, &custodytest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, 1, d1.CheckCallCount())
	assert.Equal(t, 1, d2.CheckCallCount())
}
