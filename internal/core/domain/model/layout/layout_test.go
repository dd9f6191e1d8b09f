package layout_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustZone(t *testing.T, name string, itemTypes []string) layout.Zone {
	t.Helper()
	xRange, err := kernel.NewRange(0, 5)
	require.NoError(t, err)
	yRange, err := kernel.NewRange(0, 5)
	require.NoError(t, err)

	zone, err := layout.NewZone(name, itemTypes, xRange, yRange)
	require.NoError(t, err)
	return zone
}

func TestNewLayout(t *testing.T) {
	t.Run("valid_layout", func(t *testing.T) {
		zones := []layout.Zone{
			mustZone(t, "electronics", []string{"laptops"}),
			mustZone(t, "clothing", []string{"shirts"}),
		}

		l, err := layout.NewLayout("walmart_style", zones)

		require.NoError(t, err)
		assert.Equal(t, "walmart_style", l.Name())
		assert.Equal(t, 2, l.ZoneCount())
		assert.False(t, l.IsEmpty())
	})

	t.Run("zone_order_is_preserved", func(t *testing.T) {
		zones := []layout.Zone{
			mustZone(t, "b", []string{"x"}),
			mustZone(t, "a", []string{"y"}),
			mustZone(t, "c", []string{"z"}),
		}

		l, err := layout.NewLayout("ordered", zones)

		require.NoError(t, err)
		assert.Equal(t, "b", l.ZoneAt(0).Name())
		assert.Equal(t, "a", l.ZoneAt(1).Name())
		assert.Equal(t, "c", l.ZoneAt(2).Name())
	})

	t.Run("empty_layout_is_constructible", func(t *testing.T) {
		l, err := layout.NewLayout("empty", nil)

		require.NoError(t, err)
		assert.True(t, l.IsEmpty())
		assert.Equal(t, 0, l.ZoneCount())
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := layout.NewLayout("", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_zone", func(t *testing.T) {
		_, err := layout.NewLayout("broken", []layout.Zone{{}})

		require.Error(t, err)
	})
}

func TestLayout_ZonesIsACopy(t *testing.T) {
	zones := []layout.Zone{mustZone(t, "electronics", []string{"laptops"})}
	l, err := layout.NewLayout("walmart_style", zones)
	require.NoError(t, err)

	copied := l.Zones()
	copied[0] = layout.Zone{}

	assert.Equal(t, "electronics", l.ZoneAt(0).Name())
}

func TestLayout_Validate(t *testing.T) {
	t.Run("constructed_layout_is_valid", func(t *testing.T) {
		l, err := layout.NewLayout("valid", nil)
		require.NoError(t, err)
		require.NoError(t, l.Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var l layout.Layout

		require.Error(t, l.Validate())
	})
}
