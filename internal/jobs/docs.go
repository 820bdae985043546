// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. StatusReportJob - Runs every minute to log the distribution of orders
// across lifecycle states and warn about orders stuck in PENDING, which
// usually indicates a lost created event or a stopped consumer.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(listOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
package jobs
