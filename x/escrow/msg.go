package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

var _ custody.Msg = (*CreateMsg)(nil)
var _ custody.Msg = (*LockMsg)(nil)
var _ custody.Msg = (*WithdrawMsg)(nil)

// CreateMsg opens a new escrow with an empty slot. If Owner is not
// provided, the main signer becomes the owner.
type CreateMsg struct {
	Owner custody.Address
}

// Path fulfills custody.Msg interface to allow routing
func (CreateMsg) Path() string {
	return "escrow/create"
}

// Validate makes sure that this is sensible
func (m *CreateMsg) Validate() error {
	if m.Owner == nil {
		return nil
	}
	return errors.Field("Owner", m.Owner.Validate(), "invalid owner")
}

// Marshal encodes the message
func (m *CreateMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal decodes the message
func (m *CreateMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// LockMsg funds an empty escrow slot, starting the holding period.
// Open to any caller, only the owner may later withdraw.
type LockMsg struct {
	EscrowID []byte
	Amount   coin.Amount
}

// Path fulfills custody.Msg interface to allow routing
func (LockMsg) Path() string {
	return "escrow/lock"
}

// Validate makes sure that this is sensible
func (m *LockMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "EscrowID", validateID(m.EscrowID))
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.Append(errs,
			errors.Field("Amount", errors.ErrAmount, "lock amount must be positive"))
	}
	return errs
}

// Marshal encodes the message
func (m *LockMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal decodes the message
func (m *LockMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// WithdrawMsg drains an occupied escrow slot to the owner, once the
// holding period elapsed.
type WithdrawMsg struct {
	EscrowID []byte
}

// Path fulfills custody.Msg interface to allow routing
func (WithdrawMsg) Path() string {
	return "escrow/withdraw"
}

// Validate makes sure that this is sensible
func (m *WithdrawMsg) Validate() error {
	return errors.Field("EscrowID", validateID(m.EscrowID), "invalid escrow id")
}

// Marshal encodes the message
func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal decodes the message
func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// validateID ensures the reference is a sequence-generated key
func validateID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing id")
	}
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "id must be 8 bytes, got %d", len(id))
	}
	return nil
}
