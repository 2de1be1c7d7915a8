package commands

import (
	"context"
	"errors"
	"time"

	"driverapi/internal/core/application/capture"
	"driverapi/internal/core/domain/model/proof"
)

// ErrNoSignature is returned when no signature image could be stored.
var ErrNoSignature = errors.New("no signature stored")

// UploadSignatureCommandHandler keeps one signature per order; a new upload
// replaces the previous path.
type UploadSignatureCommandHandler struct {
	uowFactory EvidenceUoWFactory
	capturer   ProofCapturer
	now        func() time.Time
}

func NewUploadSignatureCommandHandler(uowFactory EvidenceUoWFactory, capturer ProofCapturer) UploadSignatureCommandHandler {
	return UploadSignatureCommandHandler{
		uowFactory: uowFactory,
		capturer:   capturer,
		now:        time.Now,
	}
}

// Handle returns the stored signature path.
func (h UploadSignatureCommandHandler) Handle(ctx context.Context, command UploadSignatureCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	var path string
	committed := false

	defer func() {
		_ = uow.Rollback(ctx)
		if !committed && path != "" {
			h.capturer.Discard(ctx, path)
		}
	}()

	orderID := command.OrderID()
	exists, err := uow.OrderRepository().Exists(ctx, orderID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrOrderNotFound
	}

	path = h.capturer.Capture(ctx, proof.KindSignature, orderID, capture.NoIndex, command.Signature())
	if path == "" {
		return "", ErrNoSignature
	}

	if _, err = uow.EvidenceRepository().UpsertSignature(ctx, orderID, path, h.now(), command.Driver().ID()); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	committed = true

	return path, nil
}
