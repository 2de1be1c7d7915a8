package commands

import (
	"context"

	"driverapi/internal/core/application/capture"
	"driverapi/internal/core/domain/model/cash"
	"driverapi/internal/core/domain/model/proof"
)

// SubmitRemittanceCommandHandler stores the optional receipt image and inserts
// the remittance. A receipt that fails to store leaves the remittance without proof.
type SubmitRemittanceCommandHandler struct {
	uowFactory RemittanceUoWFactory
	capturer   ProofCapturer
}

func NewSubmitRemittanceCommandHandler(uowFactory RemittanceUoWFactory, capturer ProofCapturer) SubmitRemittanceCommandHandler {
	return SubmitRemittanceCommandHandler{
		uowFactory: uowFactory,
		capturer:   capturer,
	}
}

func (h SubmitRemittanceCommandHandler) Handle(ctx context.Context, command SubmitRemittanceCommand) (*cash.Remittance, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	drv := command.Driver()
	remittance, err := cash.NewRemittance(drv.ID(), command.Amount(), command.Note())
	if err != nil {
		return nil, err
	}
	proofPath := h.capturer.Capture(ctx, proof.KindRemittance, drv.ID(), capture.NoIndex, command.Proof())
	remittance.AttachProof(proofPath)
	committed := false

	defer func() {
		if !committed && proofPath != "" {
			h.capturer.Discard(ctx, proofPath)
		}
	}()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.RemittanceRepository().Add(ctx, remittance)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	return stored, nil
}
