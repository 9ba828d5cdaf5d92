package vault

import (
	"testing"

	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestCreateMsgValidate(t *testing.T) {
	assert.Nil(t, (&CreateMsg{}).Validate())
	assert.Nil(t, (&CreateMsg{Owner: custodytest.NewCondition().Address()}).Validate())

	err := (&CreateMsg{Owner: []byte("too short")}).Validate()
	assert.FieldError(t, err, "Owner", errors.ErrInput)
}

func TestDepositMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg       DepositMsg
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			msg: DepositMsg{VaultID: custodytest.SequenceID(1), Amount: 100},
		},
		"zero amount is allowed": {
			msg: DepositMsg{VaultID: custodytest.SequenceID(1), Amount: 0},
		},
		"missing id": {
			msg:       DepositMsg{Amount: 100},
			wantField: "VaultID",
			wantErr:   errors.ErrEmpty,
		},
		"malformed id": {
			msg:       DepositMsg{VaultID: []byte("abc"), Amount: 100},
			wantField: "VaultID",
			wantErr:   errors.ErrInput,
		},
		"negative amount": {
			msg:       DepositMsg{VaultID: custodytest.SequenceID(1), Amount: -4},
			wantField: "Amount",
			wantErr:   errors.ErrAmount,
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
	msg := WithdrawMsg{VaultID: custodytest.SequenceID(7), Amount: coin.Amount(50)}
	assert.Nil(t, msg.Validate())

	bad := WithdrawMsg{VaultID: custodytest.SequenceID(7), Amount: -1}
	assert.FieldError(t, bad.Validate(), "Amount", errors.ErrAmount)
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "vault/create", CreateMsg{}.Path())
	assert.Equal(t, "vault/deposit", DepositMsg{}.Path())
	assert.Equal(t, "vault/withdraw", WithdrawMsg{}.Path())
}
