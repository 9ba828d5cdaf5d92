package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

var _ orm.CloneableData = (*Escrow)(nil)

// Escrow is the state of a single time locked escrow slot. The owner
// is set at creation and never reassigned.
type Escrow struct {
	// Owner is the only address allowed to withdraw.
	Owner custody.Address
	// Amount held in the slot. Zero means the slot is empty and
	// UnlockAt carries no meaning.
	Amount coin.Amount
	// UnlockAt is the point in time from which withdrawal is
	// permitted, inclusive. Only meaningful while Amount is not zero.
	UnlockAt custody.UnixTime
}

// IsLocked returns true if the slot currently holds a deposit
func (e *Escrow) IsLocked() bool {
	return e.Amount.IsPositive()
}

// CanWithdraw is a pure predicate: true iff the slot is occupied and
// the holding period has elapsed. The boundary is inclusive, at
// exactly the unlock time withdrawal is allowed.
func CanWithdraw(e *Escrow, now custody.UnixTime) bool {
	return e.IsLocked() && now >= e.UnlockAt
}

// Marshal encodes the escrow state for storage
func (e *Escrow) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(e)
}

// Unmarshal decodes the escrow state from storage
func (e *Escrow) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, e)
}

// Validate ensures the escrow can be saved
func (e *Escrow) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", e.Owner.Validate())
	errs = errors.AppendField(errs, "Amount", e.Amount.Validate())
	errs = errors.AppendField(errs, "UnlockAt", e.UnlockAt.Validate())
	if e.IsLocked() && e.UnlockAt == 0 {
		errs = errors.Append(errs,
			errors.Field("UnlockAt", errors.ErrEmpty, "occupied slot requires an unlock time"))
	}
	return errs
}

// Copy produces a fresh copy to fulfill the CloneableData interface
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Owner:    e.Owner.Clone(),
		Amount:   e.Amount,
		UnlockAt: e.UnlockAt,
	}
}

// AsEscrow extracts the escrow value from an orm object, nil on mismatch
func AsEscrow(obj orm.Object) *Escrow {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	e, ok := obj.Value().(*Escrow)
	if !ok {
		return nil
	}
	return e
}

// BucketName is where all escrows are stored, also the sequence
// domain for new escrow IDs.
const BucketName = "escrow"

// Bucket is a type-safe wrapper around a generic bucket of escrows
type Bucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewBucket initializes the escrow bucket
func NewBucket() Bucket {
	b := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Escrow{}))
	return Bucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

// Create allocates an ID and stores a fresh escrow with an empty slot
func (b Bucket) Create(db custody.KVStore, owner custody.Address) (orm.Object, error) {
	key, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	obj := orm.NewSimpleObj(key, &Escrow{
		Owner: owner,
	})
	return obj, b.Save(db, obj)
}

// Save enforces the proper type before delegating to the generic bucket
func (b Bucket) Save(db custody.KVStore, obj orm.Object) error {
	if _, ok := obj.Value().(*Escrow); !ok {
		return errors.Wrapf(errors.ErrType, "cannot store %T in escrow bucket", obj.Value())
	}
	return b.Bucket.Save(db, obj)
}

// GetEscrow loads the escrow with given ID. Missing escrow is an
// ErrNotFound error, unlike the generic bucket nil contract.
func (b Bucket) GetEscrow(db custody.ReadOnlyKVStore, id []byte) (orm.Object, *Escrow, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, nil, err
	}
	e := AsEscrow(obj)
	if e == nil {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "escrow %X", id)
	}
	return obj, e, nil
}
