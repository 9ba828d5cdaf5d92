package vault

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
)

const (
	// pay vault creation cost up-front
	createVaultCost   int64 = 300
	depositVaultCost  int64 = 50
	withdrawVaultCost int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package
func RegisterRoutes(r custody.Registry, auth x.Authenticator, pay x.Paymaster) {
	bucket := NewBucket()

	r.Handle(CreateMsg{}.Path(), CreateHandler{auth: auth, bucket: bucket})
	r.Handle(DepositMsg{}.Path(), DepositHandler{bucket: bucket})
	r.Handle(WithdrawMsg{}.Path(), WithdrawHandler{auth: auth, bucket: bucket, pay: pay})
}

// RegisterQuery will register this bucket as "/vaults"
func RegisterQuery(qr custody.QueryRouter) {
	NewBucket().Register("vaults", qr)
}

// CreateHandler opens new vaults
type CreateHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ custody.Handler = CreateHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: createVaultCost}, nil
}

// Deliver creates the vault with a zero balance
func (h CreateHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// apply a default for owner
	owner := msg.Owner
	if owner == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, errors.Wrap(errors.ErrUnauthorized, "no signer to assign ownership")
		}
		owner = signer.Address()
	}

	obj, err := h.bucket.Create(db, owner)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}
	return &custody.DeliverResult{Data: obj.Key()}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

// DepositHandler credits a vault balance. Deposits are open to any
// caller, so no authenticator is consulted.
type DepositHandler struct {
	bucket Bucket
}

var _ custody.Handler = DepositHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h DepositHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: depositVaultCost}, nil
}

// Deliver adds the amount to the vault balance
func (h DepositHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, obj, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	vault := obj.Value().(*Vault)

	// the only failure here is overflow
	updated, err := vault.Balance.Add(msg.Amount)
	if err != nil {
		return nil, err
	}
	vault.Balance = updated
	if err := h.bucket.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}
	return &custody.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h DepositHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*DepositMsg, orm.Object, error) {
	var msg DepositMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	obj, _, err := h.bucket.GetVault(db, msg.VaultID)
	if err != nil {
		return nil, nil, err
	}
	return &msg, obj, nil
}

// WithdrawHandler releases part of the balance to the vault owner
type WithdrawHandler struct {
	auth   x.Authenticator
	bucket Bucket
	pay    x.Paymaster
}

var _ custody.Handler = WithdrawHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h WithdrawHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: withdrawVaultCost}, nil
}

// Deliver debits the vault and pays out to the owner. The updated
// balance is persisted before any value leaves the store, so a
// reentrant call through the paymaster sees the post-withdrawal state.
func (h WithdrawHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, obj, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	vault := obj.Value().(*Vault)

	updated, err := vault.Balance.Subtract(msg.Amount)
	if err != nil {
		return nil, err
	}
	vault.Balance = updated
	if err := h.bucket.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}

	// state is persisted, now the value may leave
	if err := h.pay.Pay(ctx, vault.Owner, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "payout failed")
	}

	res := &custody.DeliverResult{
		Tags: withdrawTags(vault.Owner, msg.Amount.String()),
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h WithdrawHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*WithdrawMsg, orm.Object, error) {
	var msg WithdrawMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	obj, vault, err := h.bucket.GetVault(db, msg.VaultID)
	if err != nil {
		return nil, nil, err
	}

	if !h.auth.HasAddress(ctx, vault.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can withdraw")
	}
	if vault.Balance.LessThan(msg.Amount) {
		return nil, nil, errors.Wrapf(errors.ErrInsufficientFunds,
			"cannot withdraw %s from %s", msg.Amount, vault.Balance)
	}
	return &msg, obj, nil
}

// withdrawTags describes a completed payout for event subscribers
func withdrawTags(recipient custody.Address, amount string) []common.KVPair {
	return []common.KVPair{
		custody.Tag("withdrawer", recipient.String()),
		custody.Tag("amount", amount),
	}
}
