/*
Package x contains interfaces and helpers shared by the extension
packages that implement the actual business logic.

Extensions living under x are optional building blocks. An application
composes the ones it needs with a router and a decorator stack.
*/
package x

// Validater is implemented by anything that can check its own state.
// This is a stateless check, no access to the database.
//
// (Yes, we know the correct spelling is Validator, but that name is
// reserved for the consensus engine.)
type Validater interface {
	Validate() error
}
