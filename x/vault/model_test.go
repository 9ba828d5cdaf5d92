package vault

import (
	"testing"

	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

func TestVaultValidate(t *testing.T) {
	owner := custodytest.NewCondition().Address()

	assert.Nil(t, (&Vault{Owner: owner, Balance: 5}).Validate())
	assert.FieldError(t, (&Vault{Balance: 5}).Validate(), "Owner", errors.ErrInput)
	assert.FieldError(t, (&Vault{Owner: owner, Balance: -1}).Validate(), "Balance", errors.ErrAmount)
}

func TestVaultRoundTrip(t *testing.T) {
	owner := custodytest.NewCondition().Address()
	v := &Vault{Owner: owner, Balance: coin.Amount(123)}

	raw, err := v.Marshal()
	assert.Nil(t, err)

	var loaded Vault
	assert.Nil(t, loaded.Unmarshal(raw))
	assert.Equal(t, v.Owner, loaded.Owner)
	assert.Equal(t, v.Balance, loaded.Balance)
}

func TestBucketCreateAssignsSequentialIDs(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	owner := custodytest.NewCondition().Address()

	first, err := bucket.Create(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, custodytest.SequenceID(1), first.Key())

	second, err := bucket.Create(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, custodytest.SequenceID(2), second.Key())

	_, v, err := bucket.GetVault(db, first.Key())
	assert.Nil(t, err)
	assert.Equal(t, owner, v.Owner)
	assert.Equal(t, coin.Amount(0), v.Balance)
}

func TestBucketGetMissingVault(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	_, _, err := bucket.GetVault(db, custodytest.SequenceID(42))
	assert.IsErr(t, errors.ErrNotFound, err)
}
