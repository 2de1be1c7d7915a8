package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"driverapi/internal/core/application/capture"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/core/domain/services"
	"driverapi/internal/core/ports"
	"driverapi/internal/pkg/errs"
	"driverapi/internal/pkg/metrics"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotApplicable = errors.New("order is not eligible for driver status updates")

	// ErrTransientStoreFailure and ErrPersistenceFailure wrap the underlying
	// store error, which callers must log but never show to drivers.
	ErrTransientStoreFailure = errors.New("status update failed temporarily")
	ErrPersistenceFailure    = errors.New("status update failed")
)

const (
	HistoryPickedUp  = "picked_up"
	HistoryDelivered = "delivered"
)

// Affected holds the rows touched by each write so callers can detect no-op writes.
type Affected struct {
	Status       int64
	Assignment   int64
	PickedUp     int64
	PaymentStamp int64
	Receipt      int64
	ProofPhoto   int64
	History      int64
	Notification int64
	Payment      int64
}

// UpdateDeliveryStatusResult echoes the request, the mapped backend status and
// the order as persisted at the end of the transaction.
type UpdateDeliveryStatusResult struct {
	OrderID  kernel.ID
	Status   order.DriverStatus
	DBStatus *order.BackendStatus
	// NoChange is set for statuses that never touch the backend order.
	NoChange  bool
	ProofPath string
	Affected  Affected
	Current   order.State
}

// UpdateDeliveryStatusCommandHandler runs the delivery status workflow in a
// single all-or-nothing transaction: lock and classify the order, write the
// mapped statuses, claim the order for the driver and, on delivery, record
// proof, receipt, history, notification and collected cash.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	capturer   ProofCapturer
	publisher  ports.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	capturer ProofCapturer,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		capturer:   capturer,
		publisher:  publisher,
		logger:     logger.With("component", "update_delivery_status"),
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler using now for every timestamp it writes.
func (h UpdateDeliveryStatusCommandHandler) WithClock(now func() time.Time) UpdateDeliveryStatusCommandHandler {
	h.now = now
	return h
}

// Handle applies the command. The transaction is detached from ctx
// cancellation: once started it either commits or rolls back in full.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateDeliveryStatusCommand,
) (UpdateDeliveryStatusResult, error) {
	if err := command.Validate(); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	ctx = context.WithoutCancel(ctx)

	result, err := h.apply(ctx, command)
	if err != nil {
		err = h.classify(command, err)
		metrics.StatusUpdatesTotal.WithLabelValues(command.Status().String(), outcomeOf(err)).Inc()
		return UpdateDeliveryStatusResult{}, err
	}

	if result.NoChange {
		metrics.StatusUpdatesTotal.WithLabelValues(command.Status().String(), "no_change").Inc()
		return result, nil
	}

	metrics.StatusUpdatesTotal.WithLabelValues(command.Status().String(), "ok").Inc()
	h.publish(ctx, command, result)
	return result, nil
}

func (h UpdateDeliveryStatusCommandHandler) apply(
	ctx context.Context,
	command UpdateDeliveryStatusCommand,
) (UpdateDeliveryStatusResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	orders := uow.OrderRepository()
	orderID := command.OrderID()
	status := command.Status()

	result := UpdateDeliveryStatusResult{
		OrderID: orderID,
		Status:  status,
	}
	committed := false

	defer func() {
		_ = uow.Rollback(ctx)
		if !committed && result.ProofPath != "" {
			h.capturer.Discard(ctx, result.ProofPath)
		}
	}()

	locked, err := orders.GetForUpdate(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UpdateDeliveryStatusResult{}, ErrOrderNotFound
	}
	if err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	if err = locked.CheckDriverUpdatable(); err != nil {
		return UpdateDeliveryStatusResult{}, fmt.Errorf("%w: %w", ErrOrderNotApplicable, err)
	}

	backendStatus, ok := status.BackendStatus()
	if !ok {
		result.NoChange = true
		result.Current = locked.State()
		if err = uow.Commit(ctx); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
		committed = true
		return result, nil
	}
	result.DBStatus = &backendStatus

	if result.Affected.Status, err = orders.UpdateStatus(ctx, orderID, backendStatus, status); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	if locked.CanBeClaimedBy(status) {
		result.Affected.Assignment, err = orders.AssignDriverIfAbsent(ctx, orderID, command.Driver().ID())
		if err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
	}

	switch status {
	case order.PickedUp:
		if err = h.recordPickup(ctx, uow, orderID, &result.Affected); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
	case order.Delivered:
		if err = h.recordDelivery(ctx, uow, command, &result); err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
	}

	current, err := orders.Get(ctx, orderID)
	if err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	result.Current = current.State()

	if err = uow.Commit(ctx); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	committed = true

	return result, nil
}

func (h UpdateDeliveryStatusCommandHandler) recordPickup(
	ctx context.Context,
	uow DeliveryUoW,
	orderID kernel.ID,
	affected *Affected,
) error {
	at := h.now()

	var err error
	if affected.PickedUp, err = uow.OrderRepository().MarkPickedUp(ctx, orderID, at); err != nil {
		return err
	}

	affected.History, err = uow.EvidenceRepository().AppendHistory(ctx, orderID, HistoryPickedUp, at)
	return err
}

func (h UpdateDeliveryStatusCommandHandler) recordDelivery(
	ctx context.Context,
	uow DeliveryUoW,
	command UpdateDeliveryStatusCommand,
	result *UpdateDeliveryStatusResult,
) error {
	orderID := command.OrderID()
	drv := command.Driver()
	by := drv.Attribution()
	at := h.now()
	evidence := uow.EvidenceRepository()
	affected := &result.Affected

	var err error

	result.ProofPath = h.capturer.Capture(ctx, proof.KindPhoto, orderID, capture.NoIndex, command.Proof())
	if result.ProofPath != "" {
		if affected.ProofPhoto, err = evidence.AddProofPhoto(ctx, orderID, result.ProofPath, at, drv.ID()); err != nil {
			return err
		}
	}

	if affected.PaymentStamp, err = uow.OrderRepository().StampPaymentReceived(ctx, orderID, at, by); err != nil {
		return err
	}

	affected.Receipt, err = evidence.UpsertReceipt(ctx, ports.Receipt{
		OrderID:    orderID,
		ReceivedAt: at,
		ReceivedBy: by,
		ProofPath:  result.ProofPath,
	})
	if err != nil {
		return err
	}

	if affected.History, err = evidence.AppendHistory(ctx, orderID, HistoryDelivered, at); err != nil {
		return err
	}

	notification := services.NewDeliveryConfirmation().Notification(drv, orderID)
	if affected.Notification, err = evidence.AddNotification(ctx, notification, at); err != nil {
		return err
	}

	amount := command.CollectedAmount()
	if amount == nil {
		return nil
	}

	payments := uow.PaymentRepository()
	p, err := payments.GetByOrder(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if p.CollectCash(*amount) {
		affected.Payment, err = payments.Update(ctx, p)
	}
	return err
}

// classify maps store failures to the transient or persistence failure
// sentinels and logs the detail that the caller will not see.
func (h UpdateDeliveryStatusCommandHandler) classify(command UpdateDeliveryStatusCommand, err error) error {
	if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrOrderNotApplicable) {
		return err
	}

	attrs := []any{
		"order_id", command.OrderID().Int64(),
		"driver_id", command.Driver().ID().Int64(),
		"status", command.Status().String(),
		"error", err,
	}

	if errors.Is(err, errs.ErrTransient) {
		h.logger.Warn("status update rolled back on transient store failure", attrs...)
		return fmt.Errorf("%w: %w", ErrTransientStoreFailure, err)
	}

	h.logger.Error("status update rolled back", attrs...)
	return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
}

func (h UpdateDeliveryStatusCommandHandler) publish(
	ctx context.Context,
	command UpdateDeliveryStatusCommand,
	result UpdateDeliveryStatusResult,
) {
	if h.publisher == nil {
		return
	}

	event := ports.OrderStatusChanged{
		OrderID:      result.OrderID.Int64(),
		DriverID:     command.Driver().ID().Int64(),
		DriverStatus: result.Status.String(),
		OccurredAt:   h.now().UTC(),
	}
	if result.DBStatus != nil {
		event.OrderStatus = result.DBStatus.String()
	}

	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		metrics.EventPublishFailuresTotal.Inc()
		h.logger.Warn("order status event not published", "order_id", event.OrderID, "error", err)
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, ErrOrderNotApplicable):
		return "not_applicable"
	case errors.Is(err, ErrTransientStoreFailure):
		return "transient"
	default:
		return "failed"
	}
}
