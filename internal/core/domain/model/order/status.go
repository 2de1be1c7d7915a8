package order

import (
	"errors"
	"fmt"
)

var ErrInvalidDriverStatus = errors.New("driver status is invalid")

// DriverStatus is the fine-grained status reported by the driver app.
type DriverStatus string

const (
	Assigned  DriverStatus = "assigned"
	Accepted  DriverStatus = "accepted"
	OnTheWay  DriverStatus = "on_the_way"
	PickedUp  DriverStatus = "picked_up"
	Delivered DriverStatus = "delivered"
	Rejected  DriverStatus = "rejected"
)

// BackendStatus is the coarse order status visible to admins and customers.
type BackendStatus string

const (
	StatusPending        BackendStatus = "Pending"
	StatusProcessing     BackendStatus = "Processing"
	StatusReadyToDeliver BackendStatus = "Ready to deliver"
	StatusOnTheWay       BackendStatus = "On the way"
	StatusDelivered      BackendStatus = "Delivered"
	StatusCancelled      BackendStatus = "Cancelled"
)

// picked_up maps to Processing on purpose: the order is in the driver's hands
// but the backend has no dedicated state for it.
var backendStatusByDriverStatus = map[DriverStatus]BackendStatus{
	Assigned:  StatusPending,
	Accepted:  StatusOnTheWay,
	OnTheWay:  StatusOnTheWay,
	PickedUp:  StatusProcessing,
	Delivered: StatusDelivered,
}

var driverStatusByBackendStatus = map[BackendStatus]DriverStatus{
	StatusPending:        Assigned,
	StatusProcessing:     Assigned,
	StatusReadyToDeliver: Assigned,
	StatusOnTheWay:       OnTheWay,
	StatusDelivered:      Delivered,
	StatusCancelled:      Rejected,
}

// AllDriverStatuses returns the allowed driver statuses in lifecycle order.
func AllDriverStatuses() []DriverStatus {
	return []DriverStatus{Assigned, Accepted, OnTheWay, PickedUp, Delivered, Rejected}
}

// ParseDriverStatus accepts exactly one of the allowed values; matching is case-sensitive.
func ParseDriverStatus(s string) (DriverStatus, error) {
	status := DriverStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s DriverStatus) Validate() error {
	switch s {
	case Assigned, Accepted, OnTheWay, PickedUp, Delivered, Rejected:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDriverStatus, string(s))
	}
}

// BackendStatus maps the driver status to the backend order status.
// The second result is false when the status must not change the backend order.
func (s DriverStatus) BackendStatus() (BackendStatus, bool) {
	b, ok := backendStatusByDriverStatus[s]
	return b, ok
}

// AssignsDriver reports whether reporting this status claims an unassigned order.
func (s DriverStatus) AssignsDriver() bool {
	switch s {
	case Accepted, OnTheWay, PickedUp, Delivered:
		return true
	default:
		return false
	}
}

func (s DriverStatus) String() string {
	return string(s)
}

// DriverStatus is the fallback driver-facing status for orders the driver app
// has not touched yet.
func (b BackendStatus) DriverStatus() DriverStatus {
	if s, ok := driverStatusByBackendStatus[b]; ok {
		return s
	}
	return Assigned
}

func (b BackendStatus) String() string {
	return string(b)
}

// ActiveBackendStatuses are the statuses listed to drivers.
func ActiveBackendStatuses() []BackendStatus {
	return []BackendStatus{StatusPending, StatusProcessing, StatusReadyToDeliver, StatusOnTheWay, StatusDelivered}
}
