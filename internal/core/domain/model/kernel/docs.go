// Package kernel provides core domain primitives shared by the driver API domain model.
//
// The package includes:
//   - ID: a positive integer identifier used by orders, drivers and remittances
//   - Money: a currency amount held in cents to avoid float drift in cash reconciliation
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and safe for
// concurrent use.
package kernel
