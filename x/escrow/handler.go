package escrow

import (
	"time"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
)

// HoldingPeriod is how long a locked deposit is held before the owner
// may withdraw it. It is a fixed constant of the design.
const HoldingPeriod = 30 * 24 * time.Hour

const (
	// pay escrow creation cost up-front
	createEscrowCost   int64 = 300
	lockEscrowCost     int64 = 100
	withdrawEscrowCost int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package
func RegisterRoutes(r custody.Registry, auth x.Authenticator, pay x.Paymaster) {
	bucket := NewBucket()

	r.Handle(CreateMsg{}.Path(), CreateHandler{auth: auth, bucket: bucket})
	r.Handle(LockMsg{}.Path(), LockHandler{bucket: bucket})
	r.Handle(WithdrawMsg{}.Path(), WithdrawHandler{auth: auth, bucket: bucket, pay: pay})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr custody.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// CreateHandler opens new escrows
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
	return &custody.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver creates the escrow with an empty slot
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
		return nil, errors.Wrap(err, "cannot store escrow")
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

// LockHandler funds an empty slot. Locking is open to any depositor,
// only the owner may later withdraw. This asymmetry is deliberate.
type LockHandler struct {
	bucket Bucket
}

var _ custody.Handler = LockHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h LockHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: lockEscrowCost}, nil
}

// Deliver fills the slot and stamps the unlock time
func (h LockHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, obj, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	esc := obj.Value().(*Escrow)

	blockNow, err := custody.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	esc.Amount = msg.Amount
	esc.UnlockAt = custody.AsUnixTime(blockNow).Add(HoldingPeriod)

	if err := h.bucket.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}

	res := &custody.DeliverResult{
		Tags: []common.KVPair{
			custody.Tag("locked", esc.Amount.String()),
			custody.Tag("unlock_at", esc.UnlockAt.String()),
		},
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h LockHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*LockMsg, orm.Object, error) {
	var msg LockMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	obj, esc, err := h.bucket.GetEscrow(db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if esc.IsLocked() {
		return nil, nil, errors.Wrap(errors.ErrState, "slot already occupied")
	}
	return &msg, obj, nil
}

// WithdrawHandler drains an occupied slot to the owner
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
	return &custody.CheckResult{GasAllocated: withdrawEscrowCost}, nil
}

// Deliver zeroes the slot and pays out the held amount. The emptied
// slot is persisted before any value leaves the store, so a reentrant
// call through the paymaster sees the post-withdrawal state and
// cannot double-withdraw.
func (h WithdrawHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	_, obj, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	esc := obj.Value().(*Escrow)

	amount := esc.Amount
	esc.Amount = 0
	esc.UnlockAt = 0
	if err := h.bucket.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}

	// state is persisted, now the value may leave
	if err := h.pay.Pay(ctx, esc.Owner, amount); err != nil {
		return nil, errors.Wrap(err, "payout failed")
	}

	res := &custody.DeliverResult{
		Tags: []common.KVPair{
			custody.Tag("withdrawer", esc.Owner.String()),
			custody.Tag("amount", amount.String()),
		},
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h WithdrawHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*WithdrawMsg, orm.Object, error) {
	var msg WithdrawMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	obj, esc, err := h.bucket.GetEscrow(db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}

	if !h.auth.HasAddress(ctx, esc.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can withdraw")
	}
	if !esc.IsLocked() {
		return nil, nil, errors.Wrap(errors.ErrState, "slot is empty")
	}
	if !custody.IsExpired(ctx, esc.UnlockAt) {
		return nil, nil, errors.Wrapf(errors.ErrTimeLock, "locked until %s", esc.UnlockAt)
	}
	return &msg, obj, nil
}
