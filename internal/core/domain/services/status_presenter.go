package services

import "driverapi/internal/core/domain/model/order"

const (
	DisplayOutForDelivery = "Out for delivery"
	DisplayPreparing      = "Preparing"
)

// Presentation is how an order status is shown to drivers and to humans.
type Presentation struct {
	Status        order.DriverStatus
	DriverStatus  *order.DriverStatus
	DisplayStatus string
}

// StatusPresenter derives display statuses. Processing is shown as "Preparing"
// to customers even when it came from a driver picked_up report.
type StatusPresenter struct{}

func NewStatusPresenter() StatusPresenter {
	return StatusPresenter{}
}

func (StatusPresenter) Present(o *order.Order) Presentation {
	return Presentation{
		Status:        o.DriverFacingStatus(),
		DriverStatus:  o.DriverStatus(),
		DisplayStatus: displayStatus(o),
	}
}

func displayStatus(o *order.Order) string {
	ds := o.DriverStatus()
	inTransit := ds != nil && (*ds == order.OnTheWay || *ds == order.PickedUp)

	switch {
	case o.Status() == order.StatusOnTheWay || inTransit:
		return DisplayOutForDelivery
	case o.Status() == order.StatusProcessing:
		return DisplayPreparing
	default:
		return o.Status().String()
	}
}
