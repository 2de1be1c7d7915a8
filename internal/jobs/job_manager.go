package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	schemaRefreshJob *SchemaRefreshJob
}

func NewJobManager(schemaRefreshJob *SchemaRefreshJob) *JobManager {
	return &JobManager{
		schemaRefreshJob: schemaRefreshJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.schemaRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start schema refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.schemaRefreshJob.Stop()
}
