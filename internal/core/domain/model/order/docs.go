// Package order provides the order model as seen by the driver app.
//
// The package includes:
//   - Order: a snapshot of the order fields the driver workflow reads and writes
//   - DriverStatus: the closed set of driver-facing statuses and their mapping to
//     backend order statuses
//   - BackendStatus: the coarse status shown to admins and customers
//   - Type: pickup versus delivery classification
//
// Key business rules:
//   - Only the six driver statuses are accepted; anything else is rejected
//   - There is no enforced ordering between driver statuses; any allowed status
//     may be reported at any time
//   - rejected never changes the backend order
//   - Pickup orders have no driver delivery lifecycle and must not be touched
//   - The assigned driver is set at most once (first writer wins)
package order
