package escrow

import (
	"testing"
	"time"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestCanWithdraw(t *testing.T) {
	owner := custodytest.NewCondition().Address()
	unlock := custody.AsUnixTime(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))

	locked := &Escrow{Owner: owner, Amount: 100, UnlockAt: unlock}
	empty := &Escrow{Owner: owner}

	cases := map[string]struct {
		esc  *Escrow
		now  custody.UnixTime
		want bool
	}{
		"before unlock": {
			esc: locked, now: unlock - 1, want: false,
		},
		"exactly at unlock, boundary is inclusive": {
			esc: locked, now: unlock, want: true,
		},
		"after unlock": {
			esc: locked, now: unlock + 1, want: true,
		},
		"empty slot never withdrawable": {
			esc: empty, now: unlock + 1000, want: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := CanWithdraw(tc.esc, tc.now); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

// the predicate is monotonic: once true it stays true while the slot
// remains untouched
func TestCanWithdrawMonotonic(t *testing.T) {
	unlock := custody.UnixTime(1000000)
	esc := &Escrow{
		Owner:    custodytest.NewCondition().Address(),
		Amount:   5,
		UnlockAt: unlock,
	}

	seen := false
	for now := unlock - 10; now < unlock+10; now++ {
		got := CanWithdraw(esc, now)
		if seen && !got {
			t.Fatalf("predicate flipped back to false at %d", now)
		}
		seen = got
	}
	if !seen {
		t.Fatal("predicate never became true")
	}
}

func TestEscrowValidate(t *testing.T) {
	owner := custodytest.NewCondition().Address()

	assert.Nil(t, (&Escrow{Owner: owner}).Validate())
	assert.Nil(t, (&Escrow{Owner: owner, Amount: 10, UnlockAt: 5}).Validate())
	assert.FieldError(t, (&Escrow{Amount: 10, UnlockAt: 5}).Validate(), "Owner", errors.ErrInput)
	// occupied slot requires an unlock time
	assert.FieldError(t, (&Escrow{Owner: owner, Amount: 10}).Validate(), "UnlockAt", errors.ErrEmpty)
}

func TestEscrowRoundTrip(t *testing.T) {
	e := &Escrow{
		Owner:    custodytest.NewCondition().Address(),
		Amount:   coin.Amount(77),
		UnlockAt: custody.UnixTime(123456),
	}

	raw, err := e.Marshal()
	assert.Nil(t, err)

	var loaded Escrow
	assert.Nil(t, loaded.Unmarshal(raw))
	assert.Equal(t, e.Owner, loaded.Owner)
	assert.Equal(t, e.Amount, loaded.Amount)
	assert.Equal(t, e.UnlockAt, loaded.UnlockAt)
}
