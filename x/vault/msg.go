package vault

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

var _ custody.Msg = (*CreateMsg)(nil)
var _ custody.Msg = (*DepositMsg)(nil)
var _ custody.Msg = (*WithdrawMsg)(nil)

// CreateMsg opens a new vault. If Owner is not provided, the main
// signer becomes the owner.
type CreateMsg struct {
	Owner custody.Address
}

// Path fulfills custody.Msg interface to allow routing
func (CreateMsg) Path() string {
	return "vault/create"
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

// DepositMsg adds funds to an existing vault. Open to any caller.
type DepositMsg struct {
	VaultID []byte
	Amount  coin.Amount
}

// Path fulfills custody.Msg interface to allow routing
func (DepositMsg) Path() string {
	return "vault/deposit"
}

// Validate makes sure that this is sensible
func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "VaultID", validateID(m.VaultID))
	errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	return errs
}

// Marshal encodes the message
func (m *DepositMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal decodes the message
func (m *DepositMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// WithdrawMsg releases part of the balance to the owner. Only the
// vault owner is authorized.
type WithdrawMsg struct {
	VaultID []byte
	Amount  coin.Amount
}

// Path fulfills custody.Msg interface to allow routing
func (WithdrawMsg) Path() string {
	return "vault/withdraw"
}

// Validate makes sure that this is sensible
func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "VaultID", validateID(m.VaultID))
	errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	return errs
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
