/*
Package escrow implements a time locked escrow: a single slot that
anyone can fund, and that only the designated owner can drain once a
fixed holding period has elapsed.

The slot is either empty (amount zero) or occupied. Locking an
occupied slot fails, so a held deposit must be fully withdrawn before
a new one is accepted. The unlock check is inclusive: withdrawal at
exactly the unlock time succeeds. The slot is zeroed and persisted
before the payout leaves through the paymaster.
*/
package escrow
