package cmd

import (
	"log/slog"
	"os"

	httpadapter "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/inmem"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// CompositionRoot wires the simulation's singletons: the layout catalog,
// the shared warehouse state, the metrics registry and the logger.
// Handlers are created on demand from these shared pieces.
type CompositionRoot struct {
	catalog  *inmem.Catalog
	state    *inmem.WarehouseState
	registry *prometheus.Registry
	sim      *metrics.SimulationMetrics
	rng      services.Rand
	logger   *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	catalog, err := inmem.NewDefaultCatalog()
	if err != nil {
		return nil, err
	}

	rng := services.SystemRand()

	state, err := inmem.NewWarehouseState(
		catalog,
		services.NewOrderFactory(services.NewPickTimeEstimator()),
		rng,
		config.DefaultLayout,
		config.HistoryCapacity,
	)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()

	return &CompositionRoot{
		catalog:  catalog,
		state:    state,
		registry: registry,
		sim:      metrics.NewSimulationMetrics(registry),
		rng:      rng,
		logger:   slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

// WarehouseState exposes the shared simulation state.
func (c *CompositionRoot) WarehouseState() ports.WarehouseState {
	return c.state
}

// MetricsRegistry exposes the Prometheus registry backing /metrics.
func (c *CompositionRoot) MetricsRegistry() *prometheus.Registry {
	return c.registry
}

// Logger exposes the process-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateGenerateOrdersCommandHandler() commands.GenerateOrdersCommandHandler {
	return commands.NewGenerateOrdersCommandHandler(c.state, c.rng, c.sim)
}

func (c *CompositionRoot) CreateSetLayoutCommandHandler() commands.SetLayoutCommandHandler {
	return commands.NewSetLayoutCommandHandler(c.state)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetLayoutsQueryHandler() queries.GetLayoutsQueryHandler {
	return queries.NewGetLayoutsQueryHandler(c.catalog, c.state)
}

func (c *CompositionRoot) CreateGetLayoutQueryHandler() queries.GetLayoutQueryHandler {
	return queries.NewGetLayoutQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.state)
}

// CreateHTTPServer assembles the API server from the handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateGenerateOrdersCommandHandler(),
		c.CreateSetLayoutCommandHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetLayoutsQueryHandler(),
		c.CreateGetLayoutQueryHandler(),
		c.CreateGetStatsQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGenerateOrdersCommandHandler(), c.logger)
}
