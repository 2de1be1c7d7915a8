// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	EvidenceRepoFactory interface {
		EvidenceRepository() ports.EvidenceRepository
	}

	RemittanceRepoFactory interface {
		RemittanceRepository() ports.RemittanceRepository
	}

	// DeliveryUoW covers the whole status workflow: the locked order, its
	// payment and the evidence left behind on delivery.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		EvidenceRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// EvidenceUoW is used by uploads that only attach evidence to an existing order.
	EvidenceUoW interface {
		TxManager
		OrderRepoFactory
		EvidenceRepoFactory
	}

	EvidenceUoWFactory interface {
		Create() EvidenceUoW
	}

	RemittanceUoW interface {
		TxManager
		RemittanceRepoFactory
	}

	RemittanceUoWFactory interface {
		Create() RemittanceUoW
	}
)

// ProofCapturer stores an image and returns its relative path, or "" when
// nothing could be stored.
type ProofCapturer interface {
	Capture(ctx context.Context, kind proof.Kind, ownerID kernel.ID, index int, img proof.Image) string
	Discard(ctx context.Context, relPaths ...string)
}
