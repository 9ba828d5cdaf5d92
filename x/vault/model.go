package vault

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

var _ orm.CloneableData = (*Vault)(nil)

// Vault is the state of a single access controlled vault. The owner is
// set at creation and never reassigned.
type Vault struct {
	// Owner is the only address allowed to withdraw.
	Owner custody.Address
	// Balance is the amount currently held. Adjusted only by
	// deposits (+) and withdrawals (-), never negative.
	Balance coin.Amount
}

// Marshal encodes the vault state for storage
func (v *Vault) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(v)
}

// Unmarshal decodes the vault state from storage
func (v *Vault) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, v)
}

// Validate ensures the vault can be saved
func (v *Vault) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", v.Owner.Validate())
	errs = errors.AppendField(errs, "Balance", v.Balance.Validate())
	return errs
}

// Copy produces a fresh copy to fulfill the CloneableData interface
func (v *Vault) Copy() orm.CloneableData {
	return &Vault{
		Owner:   v.Owner.Clone(),
		Balance: v.Balance,
	}
}

// AsVault extracts the vault value from an orm object, nil on mismatch
func AsVault(obj orm.Object) *Vault {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	v, ok := obj.Value().(*Vault)
	if !ok {
		return nil
	}
	return v
}

// BucketName is where all vaults are stored, also the sequence domain
// for new vault IDs.
const BucketName = "vault"

// Bucket is a type-safe wrapper around a generic bucket of vaults
type Bucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewBucket initializes the vault bucket
func NewBucket() Bucket {
	b := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Vault{}))
	return Bucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

// Create allocates an ID and stores a fresh vault with a zero balance
func (b Bucket) Create(db custody.KVStore, owner custody.Address) (orm.Object, error) {
	key, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	obj := orm.NewSimpleObj(key, &Vault{
		Owner:   owner,
		Balance: coin.Amount(0),
	})
	return obj, b.Save(db, obj)
}

// Save enforces the proper type before delegating to the generic bucket
func (b Bucket) Save(db custody.KVStore, obj orm.Object) error {
	if _, ok := obj.Value().(*Vault); !ok {
		return errors.Wrapf(errors.ErrType, "cannot store %T in vault bucket", obj.Value())
	}
	return b.Bucket.Save(db, obj)
}

// GetVault loads the vault with given ID. Missing vault is an
// ErrNotFound error, unlike the generic bucket nil contract.
func (b Bucket) GetVault(db custody.ReadOnlyKVStore, id []byte) (orm.Object, *Vault, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, nil, err
	}
	v := AsVault(obj)
	if v == nil {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "vault %X", id)
	}
	return obj, v, nil
}
