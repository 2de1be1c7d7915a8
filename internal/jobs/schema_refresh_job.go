package jobs

import (
	"context"
	"log/slog"
	"time"

	"driverapi/internal/adapters/out/postgres/schema"

	"github.com/robfig/cron/v3"
)

// DefaultSchemaRefreshSchedule re-probes every five minutes.
const DefaultSchemaRefreshSchedule = "0 */5 * * * *"

const schemaProbeTimeout = 30 * time.Second

// ProbeFunc inspects the database; schema.Probe bound to a *gorm.DB satisfies it.
type ProbeFunc func(ctx context.Context) (schema.Capabilities, error)

// SchemaRefreshJob keeps the capability registry in step with the live schema,
// so columns added by a migration are picked up without a restart.
type SchemaRefreshJob struct {
	probe    ProbeFunc
	registry *schema.Registry
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSchemaRefreshJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule means DefaultSchemaRefreshSchedule.
func NewSchemaRefreshJob(probe ProbeFunc, registry *schema.Registry, schedule string, logger *slog.Logger) *SchemaRefreshJob {
	if schedule == "" {
		schedule = DefaultSchemaRefreshSchedule
	}
	return &SchemaRefreshJob{
		probe:    probe,
		registry: registry,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "schema_refresh_job"),
	}
}

// Start schedules the refresh.
func (j *SchemaRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Schema refresh job started", "schedule", j.schedule)
	return nil
}

// Run probes once. A failed probe keeps the previous capabilities.
func (j *SchemaRefreshJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, schemaProbeTimeout)
	defer cancel()

	caps, err := j.probe(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Schema probe failed", "error", err)
		return
	}

	if j.registry.Store(caps) {
		j.logger.InfoContext(ctx, "Schema capabilities changed", "fingerprint", caps.Fingerprint())
	}
}

// Stop stops scheduling and waits for a running probe to finish.
func (j *SchemaRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Schema refresh job stopped")
}
