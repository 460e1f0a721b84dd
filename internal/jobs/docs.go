// Package jobs provides scheduled background tasks for the fulfilment service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds-precision specs) and only read
// state; every write goes through the command handlers.
//
// # Available Jobs
//
// 1. CapacityReportJob - Logs per-location warehouse counts and capacity usage, warning
// about locations where no further warehouse fits. Runs on CAPACITY_REPORT_SCHEDULE,
// every five minutes by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(utilizationHandler, config.CapacityReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and the next tick tries again. An invalid schedule fails StartAll.
package jobs
