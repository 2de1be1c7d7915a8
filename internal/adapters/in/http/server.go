// Package http exposes the driver API over echo.
package http

import (
	"context"
	"log/slog"

	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/application/usecases/queries"
	"driverapi/internal/core/domain/model/cash"
)

// Use case ports of the HTTP adapter. The command and query handlers satisfy them.
type (
	StatusUpdater interface {
		Handle(ctx context.Context, command commands.UpdateDeliveryStatusCommand) (commands.UpdateDeliveryStatusResult, error)
	}

	ProofPhotoUploader interface {
		Handle(ctx context.Context, command commands.UploadProofPhotosCommand) ([]string, error)
	}

	SignatureUploader interface {
		Handle(ctx context.Context, command commands.UploadSignatureCommand) (string, error)
	}

	RemittanceSubmitter interface {
		Handle(ctx context.Context, command commands.SubmitRemittanceCommand) (*cash.Remittance, error)
	}

	ActiveOrdersLister interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
	}

	ProfileReader interface {
		Handle(ctx context.Context, query queries.GetDriverProfileQuery) (queries.GetDriverProfileQueryResponse, error)
	}

	CashSummaryReader interface {
		Handle(ctx context.Context, query queries.GetCashSummaryQuery) (cash.Summary, error)
	}

	// Pinger is satisfied by *sql.DB.
	Pinger interface {
		PingContext(ctx context.Context) error
	}
)

// Handlers groups the use cases served by Server.
type Handlers struct {
	UpdateStatus     StatusUpdater
	UploadProofs     ProofPhotoUploader
	UploadSignature  SignatureUploader
	SubmitRemittance RemittanceSubmitter
	ActiveOrders     ActiveOrdersLister
	Profile          ProfileReader
	CashSummary      CashSummaryReader
	DB               Pinger
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers       Handlers
	uploadMaxBytes int64
	logger         *slog.Logger
}

// NewServer creates a server. Uploaded images above uploadMaxBytes are
// dropped; zero means unlimited.
func NewServer(handlers Handlers, uploadMaxBytes int64, logger *slog.Logger) *Server {
	return &Server{
		handlers:       handlers,
		uploadMaxBytes: uploadMaxBytes,
		logger:         logger.With("component", "http"),
	}
}
