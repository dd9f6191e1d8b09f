// Package jobs provides scheduled background tasks for the simulation.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the warehouse simulator.
//
// # Available Jobs
//
// 1. OrderGenerationJob - Runs every ten seconds to generate a fresh batch
// of 1-5 simulated orders, mimicking real-time order inflow.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(generateOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Generation failures are logged and the schedule keeps running; a transient
// failure in one tick never stops the simulation.
package jobs
