package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndReserve(t *testing.T) {
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("first attempt of the day", func(t *testing.T) {
		c := Counter{}
		require.NoError(t, CheckAndReserve(&c, today))
		assert.Equal(t, 1, c.Count)
		assert.Equal(t, "2025-03-10", c.Date)
	})

	t.Run("limit is enforced", func(t *testing.T) {
		c := Counter{}
		for i := 0; i < DailyLimit; i++ {
			require.NoError(t, CheckAndReserve(&c, today))
		}
		err := CheckAndReserve(&c, today)
		require.ErrorIs(t, err, ErrQuotaExceeded)
		assert.Equal(t, DailyLimit, c.Count)
	})

	t.Run("stale date resets the counter", func(t *testing.T) {
		c := Counter{Date: "2025-03-09", Count: DailyLimit}
		require.NoError(t, CheckAndReserve(&c, today))
		assert.Equal(t, 1, c.Count)
		assert.Equal(t, "2025-03-10", c.Date)
	})

	t.Run("next day opens fresh attempts", func(t *testing.T) {
		c := Counter{}
		for i := 0; i < DailyLimit; i++ {
			require.NoError(t, CheckAndReserve(&c, today))
		}
		require.ErrorIs(t, CheckAndReserve(&c, today), ErrQuotaExceeded)

		tomorrow := today.Add(24 * time.Hour)
		require.NoError(t, CheckAndReserve(&c, tomorrow))
		assert.Equal(t, 1, c.Count)
	})
}
