package escrow

import (
	"testing"

	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestLockMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg       LockMsg
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			msg: LockMsg{EscrowID: custodytest.SequenceID(1), Amount: 100},
		},
		"zero amount is rejected": {
			msg:       LockMsg{EscrowID: custodytest.SequenceID(1), Amount: 0},
			wantField: "Amount",
			wantErr:   errors.ErrAmount,
		},
		"negative amount is rejected": {
			msg:       LockMsg{EscrowID: custodytest.SequenceID(1), Amount: -7},
			wantField: "Amount",
			wantErr:   errors.ErrAmount,
		},
		"missing id": {
			msg:       LockMsg{Amount: 100},
			wantField: "EscrowID",
			wantErr:   errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.wantField, tc.wantErr)
		})
	}
}

func TestWithdrawMsgValidate(t *testing.T) {
	assert.Nil(t, (&WithdrawMsg{EscrowID: custodytest.SequenceID(3)}).Validate())
	assert.FieldError(t,
		(&WithdrawMsg{}).Validate(), "EscrowID", errors.ErrEmpty)
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "escrow/create", CreateMsg{}.Path())
	assert.Equal(t, "escrow/lock", LockMsg{}.Path())
	assert.Equal(t, "escrow/withdraw", WithdrawMsg{}.Path())
}
