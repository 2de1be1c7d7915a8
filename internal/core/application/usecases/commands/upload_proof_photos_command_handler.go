package commands

import (
	"context"
	"time"

	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/core/ports"
)

// UploadProofPhotosCommandHandler stores each photo, records a proof row per
// stored photo and makes the first one the receipt's primary proof.
// Photos that fail to store are skipped.
type UploadProofPhotosCommandHandler struct {
	uowFactory EvidenceUoWFactory
	capturer   ProofCapturer
	now        func() time.Time
}

func NewUploadProofPhotosCommandHandler(uowFactory EvidenceUoWFactory, capturer ProofCapturer) UploadProofPhotosCommandHandler {
	return UploadProofPhotosCommandHandler{
		uowFactory: uowFactory,
		capturer:   capturer,
		now:        time.Now,
	}
}

// Handle returns the stored paths in upload order.
// Returns ErrOrderNotFound when the order does not exist.
func (h UploadProofPhotosCommandHandler) Handle(ctx context.Context, command UploadProofPhotosCommand) ([]string, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	var stored []string
	committed := false

	defer func() {
		_ = uow.Rollback(ctx)
		if !committed && len(stored) > 0 {
			h.capturer.Discard(ctx, stored...)
		}
	}()

	orderID := command.OrderID()
	exists, err := uow.OrderRepository().Exists(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrderNotFound
	}

	evidence := uow.EvidenceRepository()
	drv := command.Driver()
	at := h.now()

	stored = make([]string, 0, len(command.Photos()))
	for idx, photo := range command.Photos() {
		path := h.capturer.Capture(ctx, proof.KindPhoto, orderID, idx, photo)
		if path == "" {
			continue
		}
		stored = append(stored, path)

		if _, err = evidence.AddProofPhoto(ctx, orderID, path, at, drv.ID()); err != nil {
			return nil, err
		}
	}

	if len(stored) > 0 {
		_, err = evidence.UpsertReceipt(ctx, ports.Receipt{
			OrderID:    orderID,
			ReceivedAt: at,
			ReceivedBy: drv.Attribution(),
			ProofPath:  stored[0],
		})
		if err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	return stored, nil
}
