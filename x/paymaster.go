package x

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
)

// Paymaster is the boundary through which value leaves the custody
// state. Handlers persist their own bookkeeping first and call Pay
// last, so a misbehaving implementation can never observe, or re-enter
// into, a half-updated state.
type Paymaster interface {
	// Pay transfers the given amount to the destination address.
	// A non-nil error aborts the transaction that triggered the
	// payout, rolling back all state changes.
	Pay(ctx custody.Context, dest custody.Address, amount coin.Amount) error
}
