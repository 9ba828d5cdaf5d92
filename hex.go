package custody

import (
	"encoding/hex"
	"encoding/json"
	"strings"
)

// marshalHex is a helper to encode []byte into a hex string,
// used by types that want to override the default base64 []byte
// JSON encoding.
func marshalHex(bytes []byte) ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(bytes))
	return json.Marshal(s)
}

// unmarshalHex is a helper to decode a hex string from JSON into the
// destination byte slice.
func unmarshalHex(src []byte, dest *[]byte) error {
	var s string
	if err := json.Unmarshal(src, &s); err != nil {
		return err
	}
	bz, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return err
	}
	*dest = bz
	return nil
}
