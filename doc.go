/*
Package custody defines the common interfaces that tie the framework
together: the key-value store family, the transaction and message
abstractions, handlers with their decorator stack, and the ambient
values (block time, height, chain id, logger) that are threaded through
a Context instead of being read from globals.

Extensions implementing actual custody logic live under x/. The two
shipped here are x/vault, an owner-restricted account that anyone can
fund, and x/escrow, a single-slot deposit that unlocks after a fixed
holding period.

Every operation executes against a cache-wrapped store and is committed
or discarded as a unit, so a failed operation never leaves partial
state behind.
*/
package custody
