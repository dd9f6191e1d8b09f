// Package http exposes the simulation over a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers backing the API endpoints.
type Server struct {
	// Command handlers
	generateOrdersHandler commands.GenerateOrdersCommandHandler
	setLayoutHandler      commands.SetLayoutCommandHandler

	// Query handlers
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getLayoutsHandler      queries.GetLayoutsQueryHandler
	getLayoutHandler       queries.GetLayoutQueryHandler
	getStatsHandler        queries.GetStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	generateOrdersHandler commands.GenerateOrdersCommandHandler,
	setLayoutHandler commands.SetLayoutCommandHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getLayoutsHandler queries.GetLayoutsQueryHandler,
	getLayoutHandler queries.GetLayoutQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
) *Server {
	return &Server{
		generateOrdersHandler:  generateOrdersHandler,
		setLayoutHandler:       setLayoutHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		getLayoutsHandler:      getLayoutsHandler,
		getLayoutHandler:       getLayoutHandler,
		getStatsHandler:        getStatsHandler,
	}
}

// RegisterRoutes attaches the API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/orders", s.GetOrders)
	e.GET("/api/orders/history", s.GetOrderHistory)
	e.GET("/api/layouts", s.GetLayouts)
	e.GET("/api/layout/:name", s.GetLayout)
	e.POST("/api/layout/:name", s.SetLayout)
	e.GET("/api/stats", s.GetStats)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/orders - generates a fresh batch of orders,
// simulating real-time order inflow.
func (s *Server) GetOrders(ctx echo.Context) error {
	cmd := commands.NewGenerateOrdersCommand()

	result, err := s.generateOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate orders",
		})
	}

	return ctx.JSON(http.StatusOK, GenerateOrdersResponse{
		Orders:      toOrderDTOs(result.Orders),
		Timestamp:   result.GeneratedAt,
		TotalOrders: len(result.Orders),
	})
}

// GetOrderHistory handles GET /api/orders/history - returns the most recent
// orders, newest first. The optional limit parameter defaults to 50.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	limit := queries.DefaultHistoryLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit: " + raw,
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetOrderHistoryQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	orders, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order history",
		})
	}

	statsQuery := queries.NewGetStatsQuery()
	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), statsQuery)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order history",
		})
	}

	return ctx.JSON(http.StatusOK, OrderHistoryResponse{
		Orders:      toOrderDTOs(orders),
		TotalOrders: stats.HistorySize,
		Showing:     len(orders),
	})
}

// GetLayouts handles GET /api/layouts - lists the available layouts and the
// active selection.
func (s *Server) GetLayouts(ctx echo.Context) error {
	query := queries.NewGetLayoutsQuery()

	response, err := s.getLayoutsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve layouts",
		})
	}

	return ctx.JSON(http.StatusOK, LayoutsResponse{
		Layouts:       response.Names,
		CurrentLayout: response.CurrentLayoutName,
	})
}

// GetLayout handles GET /api/layout/:name - returns one layout definition.
func (s *Server) GetLayout(ctx echo.Context) error {
	query, err := queries.NewGetLayoutQuery(ctx.Param("name"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid layout request: " + err.Error(),
		})
	}

	l, err := s.getLayoutHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Unknown layout: " + query.Name(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve layout",
		})
	}

	return ctx.JSON(http.StatusOK, toLayoutDTO(l))
}

// SetLayout handles POST /api/layout/:name - swaps the active layout.
func (s *Server) SetLayout(ctx echo.Context) error {
	cmd, err := commands.NewSetLayoutCommand(ctx.Param("name"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid layout request: " + err.Error(),
		})
	}

	if err := s.setLayoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Unknown layout: " + cmd.Name(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to set layout",
		})
	}

	return ctx.JSON(http.StatusOK, SetLayoutResponse{
		Message: fmt.Sprintf("Layout changed to %s", cmd.Name()),
	})
}

// GetStats handles GET /api/stats - returns the simulation counters.
func (s *Server) GetStats(ctx echo.Context) error {
	query := queries.NewGetStatsQuery()

	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve stats",
		})
	}

	var lastOrderTime *time.Time
	if !stats.LastOrderTime.IsZero() {
		t := stats.LastOrderTime
		lastOrderTime = &t
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		TotalOrdersGenerated: stats.TotalGenerated,
		CurrentLayout:        stats.CurrentLayoutName,
		OrdersInHistory:      stats.HistorySize,
		LastOrderTime:        lastOrderTime,
	})
}
