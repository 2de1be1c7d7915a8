// Package errs holds the typed errors shared by the domain model, the use
// cases and the adapters of the driver API.
//
// Each type pairs a sentinel with a struct carrying the details:
//   - ValueIsRequiredError (ErrValueIsRequired): a mandatory value is empty
//   - ValueIsInvalidError (ErrValueIsInvalid): a value breaks a domain rule
//   - ValueIsOutOfRangeError (ErrValueIsOutOfRange): a value is outside [Min, Max]
//   - ObjectNotFoundError (ErrObjectNotFound): a lookup by identifier found nothing
//   - TransientError (ErrTransient): a store failure worth retrying, such as a
//     lock wait timeout
//
// Callers match with errors.Is against the sentinel. Use cases translate these
// into their own sentinels, which the HTTP adapter maps onto response codes.
package errs
