package custody

import (
	common "github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any immediate response from the pre-flight
// validation of a transaction.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte

	// Log is human-readable informational string
	Log string

	// GasAllocated is the maximum units of work we allow this tx to perform
	GasAllocated int64
}

// DeliverResult captures any non-error abci result
// to make sure people use error for error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte

	// Log is human-readable informational string
	Log string

	// Tags are the emitted records of this operation, indexable by the
	// host. This is how Locked/Withdrawn events surface.
	Tags []common.KVPair

	// GasUsed is the units of work performed
	GasUsed int64
}

// Tag is a shortcut to create an emitted record key/value pair.
func Tag(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}
