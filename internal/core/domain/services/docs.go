// Package services provides domain services that span the order, driver and
// payment models and don't naturally belong to a single one of them.
//
// The package includes:
//   - StatusPresenter: derives the driver-facing and human display statuses of an order
//   - DeliveryConfirmation: describes the notification raised when a driver confirms delivery
package services
