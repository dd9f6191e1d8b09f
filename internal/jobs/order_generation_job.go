package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderGenerationJob drives the simulated order inflow.
// Runs every ten seconds and generates a batch of 1-5 orders.
type OrderGenerationJob struct {
	handler commands.GenerateOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderGenerationJob creates a new job for periodic order generation.
// Uses GenerateOrdersCommandHandler to produce a batch every ten seconds.
func NewOrderGenerationJob(handler commands.GenerateOrdersCommandHandler, logger *slog.Logger) *OrderGenerationJob {
	return &OrderGenerationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_generation_job"),
	}
}

// Start begins the order generation job to run every ten seconds.
func (j *OrderGenerationJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewGenerateOrdersCommand()

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order generation job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Generated order batch",
			"batch_id", result.BatchID.String(),
			"orders", len(result.Orders),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order generation job started (running every ten seconds)")
	return nil
}

// Stop stops the order generation job.
func (j *OrderGenerationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order generation job stopped")
}
