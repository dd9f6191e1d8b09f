package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.InProgress, "in_progress"},
		{order.Completed, "completed"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		require.NoError(t, order.Pending.Validate())
		require.NoError(t, order.InProgress.Validate())
		require.NoError(t, order.Completed.Validate())
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("pending_can_start", func(t *testing.T) {
		next, err := order.Pending.Start()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, next)
	})

	t.Run("in_progress_cannot_start_again", func(t *testing.T) {
		_, err := order.InProgress.Start()
		require.Error(t, err)
	})

	t.Run("completed_cannot_start", func(t *testing.T) {
		_, err := order.Completed.Start()
		require.Error(t, err)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("in_progress_can_complete", func(t *testing.T) {
		next, err := order.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("pending_cannot_skip_to_completed", func(t *testing.T) {
		_, err := order.Pending.Complete()
		require.Error(t, err)
	})

	t.Run("completed_is_final", func(t *testing.T) {
		_, err := order.Completed.Complete()
		require.Error(t, err)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid_names", func(t *testing.T) {
		for name, expected := range map[string]order.Status{
			"pending":     order.Pending,
			"in_progress": order.InProgress,
			"completed":   order.Completed,
		} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("invalid_name", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)
	})
}
