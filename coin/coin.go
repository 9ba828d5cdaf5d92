package coin

import (
	"strconv"

	"github.com/iov-one/custody/errors"
)

// MaxAmount is the largest value we accept. Computations never exceed
// it, leaving headroom below the int64 limit.
const MaxAmount Amount = 999999999999999 // 10^15-1

// Amount is a quantity of the single asset this framework custodies.
// It is always non-negative; every mutation is overflow checked and a
// value that would leave the valid range is rejected, never wrapped.
type Amount int64

// NewAmount returns the Amount representation of given value.
func NewAmount(n int64) Amount {
	return Amount(n)
}

// Add combines two amounts. It returns an error if either value is
// invalid or if the combination would overflow the accepted range.
func (a Amount) Add(o Amount) (Amount, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := o.Validate(); err != nil {
		return 0, err
	}
	sum := a + o
	if sum > MaxAmount {
		return 0, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, o)
	}
	return sum, nil
}

// Subtract removes given value from this amount. The result must stay
// within the valid range, a negative result is an error.
func (a Amount) Subtract(o Amount) (Amount, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := o.Validate(); err != nil {
		return 0, err
	}
	diff := a - o
	if diff < 0 {
		return 0, errors.Wrapf(errors.ErrAmount, "%s - %s is negative", a, o)
	}
	return diff, nil
}

// IsZero returns true if this amount represents no value.
func (a Amount) IsZero() bool {
	return a == 0
}

// IsPositive returns true if this amount represents any value.
func (a Amount) IsPositive() bool {
	return a > 0
}

// LessThan returns true if o is a greater value.
func (a Amount) LessThan(o Amount) bool {
	return a < o
}

// Validate returns an error if this amount is outside the accepted
// range.
func (a Amount) Validate() error {
	if a < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative value %d", int64(a))
	}
	if a > MaxAmount {
		return errors.Wrapf(errors.ErrOverflow, "%d exceeds max amount", int64(a))
	}
	return nil
}

// String returns a human readable representation.
func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}
