/*
Package errors implements custom error interfaces for the custody
framework.

The idea is to reuse as many errors from this package as possible and
define new ones only when necessary. Errors are categorized by root
errors created with the Register function; each carries a numeric code
that survives any number of Wrap calls, so clients and tests can match
on the kind of a failure without parsing strings:

  if errors.ErrUnauthorized.Is(err) { ...

Errors should never be created inline when returning them. Instead,
wrap a root error with the details of the failure:

  errors.Wrapf(errors.ErrInsufficientFunds, "balance %s", balance)
*/
package errors
