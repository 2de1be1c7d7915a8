// Package jobs provides scheduled background tasks of the driver API.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(schemaRefreshJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// SchemaRefreshJob re-probes the database for optional tables and columns
// and swaps the capability registry when the result differs. Repositories
// obtained after the swap use the new column set; open transactions keep
// the one they started with.
package jobs
