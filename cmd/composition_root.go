package cmd

import (
	"context"
	"database/sql"
	"log/slog"

	driverhttp "driverapi/internal/adapters/in/http"
	"driverapi/internal/adapters/out/filestore"
	"driverapi/internal/adapters/out/postgres"
	"driverapi/internal/adapters/out/postgres/driverrepo"
	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/core/application/capture"
	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/application/usecases/queries"
	"driverapi/internal/core/ports"
	"driverapi/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	sqlDB      *sql.DB
	registry   *schema.Registry
	uowFactory *postgres.GormUnitOfWorkFactory
	capturer   *capture.Capturer
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	sqlDB *sql.DB,
	registry *schema.Registry,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		sqlDB:      sqlDB,
		registry:   registry,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, registry, config.DBLockTimeout),
		capturer:   capture.NewCapturer(filestore.NewDiskStorage(config.UploadRoot), logger),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.capturer, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUploadProofPhotosCommandHandler() commands.UploadProofPhotosCommandHandler {
	var f commands.EvidenceUoWFactory = FuncEvidenceUoWFactory(func() commands.EvidenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUploadProofPhotosCommandHandler(f, c.capturer)
}

func (c *CompositionRoot) CreateUploadSignatureCommandHandler() commands.UploadSignatureCommandHandler {
	var f commands.EvidenceUoWFactory = FuncEvidenceUoWFactory(func() commands.EvidenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUploadSignatureCommandHandler(f, c.capturer)
}

func (c *CompositionRoot) CreateSubmitRemittanceCommandHandler() commands.SubmitRemittanceCommandHandler {
	var f commands.RemittanceUoWFactory = FuncRemittanceUoWFactory(func() commands.RemittanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRemittanceCommandHandler(f, c.capturer)
}

func (c *CompositionRoot) CreateAuthenticateDriverQueryHandler() queries.AuthenticateDriverQueryHandler {
	return queries.NewAuthenticateDriverQueryHandler(driverrepo.NewGormDriverRepository(c.gormDB, c.registry))
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateGetDriverProfileQueryHandler() queries.GetDriverProfileQueryHandler {
	return queries.NewGetDriverProfileQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateGetCashSummaryQueryHandler() queries.GetCashSummaryQueryHandler {
	return queries.NewGetCashSummaryQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	probe := func(ctx context.Context) (schema.Capabilities, error) {
		return schema.Probe(ctx, c.gormDB)
	}
	return jobs.NewJobManager(jobs.NewSchemaRefreshJob(probe, c.registry, c.config.SchemaRefreshCron, c.logger))
}

// CreateRouter wires every handler into the echo router. docs may be nil.
func (c *CompositionRoot) CreateRouter(docs *driverhttp.APIDocs) *echo.Echo {
	server := driverhttp.NewServer(driverhttp.Handlers{
		UpdateStatus:     c.CreateUpdateDeliveryStatusCommandHandler(),
		UploadProofs:     c.CreateUploadProofPhotosCommandHandler(),
		UploadSignature:  c.CreateUploadSignatureCommandHandler(),
		SubmitRemittance: c.CreateSubmitRemittanceCommandHandler(),
		ActiveOrders:     c.CreateGetActiveOrdersQueryHandler(),
		Profile:          c.CreateGetDriverProfileQueryHandler(),
		CashSummary:      c.CreateGetCashSummaryQueryHandler(),
		DB:               c.sqlDB,
	}, c.config.UploadMaxBytes, c.logger)

	auth := driverhttp.BearerAuth(c.CreateAuthenticateDriverQueryHandler(), c.logger)
	return driverhttp.NewRouter(server, auth, docs, c.logger)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncEvidenceUoWFactory func() commands.EvidenceUoW

func (f FuncEvidenceUoWFactory) Create() commands.EvidenceUoW {
	return f()
}

type FuncRemittanceUoWFactory func() commands.RemittanceUoW

func (f FuncRemittanceUoWFactory) Create() commands.RemittanceUoW {
	return f()
}
