package vault

import (
	amino "github.com/tendermint/go-amino"
)

// cdc is the codec used to persist models and decode messages of this
// package.
var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(&Vault{}, "custody/vault/state", nil)
	cdc.RegisterConcrete(&CreateMsg{}, "custody/vault/create", nil)
	cdc.RegisterConcrete(&DepositMsg{}, "custody/vault/deposit", nil)
	cdc.RegisterConcrete(&WithdrawMsg{}, "custody/vault/withdraw", nil)
}
