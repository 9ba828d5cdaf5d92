package coin

import (
	"testing"

	"github.com/iov-one/custody/errors"
)

func TestAmountAdd(t *testing.T) {
	cases := map[string]struct {
		a, b    Amount
		wantSum Amount
		wantErr *errors.Error
	}{
		"two values": {
			a: 100, b: 50, wantSum: 150,
		},
		"zero is neutral": {
			a: 77, b: 0, wantSum: 77,
		},
		"overflow is rejected": {
			a: MaxAmount, b: 1, wantErr: errors.ErrOverflow,
		},
		"negative input is rejected": {
			a: -4, b: 1, wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			sum, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %v, got %+v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if sum != tc.wantSum {
				t.Fatalf("want %s, got %s", tc.wantSum, sum)
			}
		})
	}
}

func TestAmountSubtract(t *testing.T) {
	cases := map[string]struct {
		a, b     Amount
		wantDiff Amount
		wantErr  *errors.Error
	}{
		"partial": {
			a: 100, b: 50, wantDiff: 50,
		},
		"to zero": {
			a: 10, b: 10, wantDiff: 0,
		},
		"negative result is rejected": {
			a: 10, b: 11, wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			diff, err := tc.a.Subtract(tc.b)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %v, got %+v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if diff != tc.wantDiff {
				t.Fatalf("want %s, got %s", tc.wantDiff, diff)
			}
		})
	}
}

func TestAmountValidate(t *testing.T) {
	if err := Amount(0).Validate(); err != nil {
		t.Fatalf("zero is a valid amount: %+v", err)
	}
	if err := Amount(-1).Validate(); !errors.ErrAmount.Is(err) {
		t.Fatalf("want ErrAmount, got %+v", err)
	}
	if err := (MaxAmount + 1).Validate(); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want ErrOverflow, got %+v", err)
	}
}
