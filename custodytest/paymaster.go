package custodytest

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/x"
)

// Payout records a single transfer requested through the Paymaster.
type Payout struct {
	Dest   custody.Address
	Amount coin.Amount
}

// Paymaster is a mock implementation of the x.Paymaster interface.
// It records every payout and can be configured to fail or to run a
// callback before returning, to model an adversarial recipient.
type Paymaster struct {
	// Err if set is returned by every Pay call. The payout is still
	// recorded.
	Err error

	// OnPay if set is called before returning from Pay. It runs after
	// the payout was recorded.
	OnPay func(ctx custody.Context, dest custody.Address, amount coin.Amount)

	payouts []Payout
}

var _ x.Paymaster = (*Paymaster)(nil)

func (p *Paymaster) Pay(ctx custody.Context, dest custody.Address, amount coin.Amount) error {
	p.payouts = append(p.payouts, Payout{Dest: dest, Amount: amount})
	if p.OnPay != nil {
		p.OnPay(ctx, dest, amount)
	}
	return p.Err
}

// Payouts returns a copy of all recorded payouts in order.
func (p *Paymaster) Payouts() []Payout {
	out := make([]Payout, len(p.payouts))
	copy(out, p.payouts)
	return out
}

// Paid sums all recorded payouts to the given address.
func (p *Paymaster) Paid(dest custody.Address) coin.Amount {
	var total coin.Amount
	for _, out := range p.payouts {
		if out.Dest.Equals(dest) {
			total += out.Amount
		}
	}
	return total
}
