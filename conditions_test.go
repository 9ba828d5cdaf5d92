package custody_test

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestConditionParse(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	cond := custody.NewCondition("sigs", "ed25519", data)

	ext, typ, payload, err := cond.Parse()
	assert.Nil(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, data, payload)
	assert.Nil(t, cond.Validate())
}

func TestConditionParseInvalid(t *testing.T) {
	cases := map[string]custody.Condition{
		"nil":            nil,
		"empty":          custody.Condition(""),
		"missing data":   custody.Condition("sigs/ed25519/"),
		"too few chunks": custody.Condition("onlyext"),
		"extension too long": custody.NewCondition(
			"waaaaaaaytoolong", "ed25519", []byte{1}),
	}

	for testName, cond := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, _, _, err := cond.Parse(); !errors.ErrInput.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err := cond.Validate(); !errors.ErrInput.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

// payload containing a newline must still parse
func TestConditionWithNewlineData(t *testing.T) {
	cond := custody.NewCondition("sigs", "ed25519", []byte{0x20, 0x0a, 0x01})
	assert.Nil(t, cond.Validate())
}

func TestConditionAddress(t *testing.T) {
	cond := custodytest.NewCondition()

	addr := cond.Address()
	assert.Nil(t, addr.Validate())
	assert.Equal(t, custody.AddressLength, len(addr))

	// stable and collision free for distinct conditions
	assert.Equal(t, addr, cond.Address())
	other := custodytest.NewCondition()
	if addr.Equals(other.Address()) {
		t.Fatal("different conditions must produce different addresses")
	}
}

func TestConditionJSON(t *testing.T) {
	cond := custody.NewCondition("sigs", "ed25519", []byte{0xca, 0xfe})

	raw, err := json.Marshal(cond)
	assert.Nil(t, err)
	assert.Equal(t, `"sigs/ed25519/CAFE"`, string(raw))

	var loaded custody.Condition
	assert.Nil(t, json.Unmarshal(raw, &loaded))
	if !cond.Equals(loaded) {
		t.Fatalf("got %q", loaded)
	}

	// empty string decodes to a nil condition
	assert.Nil(t, json.Unmarshal([]byte(`""`), &loaded))
	if loaded != nil {
		t.Fatalf("expected nil, got %q", loaded)
	}
}

func TestAddressValidate(t *testing.T) {
	assert.Nil(t, custodytest.RandomAddr(t).Validate())

	short := custody.Address{1, 2, 3}
	if err := short.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	var empty custody.Address
	if err := empty.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestAddressJSON(t *testing.T) {
	addr := custodytest.RandomAddr(t)

	raw, err := json.Marshal(addr)
	assert.Nil(t, err)

	var loaded custody.Address
	assert.Nil(t, json.Unmarshal(raw, &loaded))
	assert.Equal(t, addr, loaded)
}

func TestAddressBech32RoundTrip(t *testing.T) {
	addr := custodytest.RandomAddr(t)

	enc, err := addr.Bech32String("cstd")
	assert.Nil(t, err)

	prefix, decoded, err := custody.ParseBech32Address(enc)
	assert.Nil(t, err)
	assert.Equal(t, "cstd", prefix)
	assert.Equal(t, addr, decoded)
}

func TestAddressClone(t *testing.T) {
	addr := custodytest.RandomAddr(t)
	cpy := addr.Clone()
	assert.Equal(t, addr, cpy)

	cpy[0] ^= 0xff
	if addr.Equals(cpy) {
		t.Fatal("clone must not share memory")
	}

	var nilAddr custody.Address
	if nilAddr.Clone() != nil {
		t.Fatal("clone of nil must be nil")
	}
}
