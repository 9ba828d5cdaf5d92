package escrow

import (
	amino "github.com/tendermint/go-amino"
)

// cdc is the codec used to persist models and decode messages of this
// package.
var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(&Escrow{}, "custody/escrow/state", nil)
	cdc.RegisterConcrete(&CreateMsg{}, "custody/escrow/create", nil)
	cdc.RegisterConcrete(&LockMsg{}, "custody/escrow/lock", nil)
	cdc.RegisterConcrete(&WithdrawMsg{}, "custody/escrow/withdraw", nil)
}
