/*
Package vault implements an access controlled vault: an account that
accepts deposits from any caller and releases funds only to its owner.

A vault tracks a single balance. Deposits can only fail when the
balance would overflow. Withdrawals are restricted to the owner and to
the available balance. The balance is decremented and persisted before
any value leaves through the paymaster, so a reentrant call can never
observe a stale balance.
*/
package vault
