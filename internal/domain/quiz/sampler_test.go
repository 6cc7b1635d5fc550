package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ibrokhimov/matembot/internal/domain/model"
)

func poolWithIDs(ids ...int) []model.Question {
	pool := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, model.Question{
			ID:      id,
			Text:    fmt.Sprintf("savol %d", id),
			Options: []string{"a", "b", "c", "d"},
			Correct: 0,
		})
	}
	return pool
}

func fullPool() []model.Question {
	ids := make([]int, 0, 100)
	for id := 1; id <= 100; id++ {
		ids = append(ids, id)
	}
	return poolWithIDs(ids...)
}

func TestSampleStratified_OnePerStratum(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	selected, ok := sampleStratified(fullPool(), rnd, zap.NewNop())
	require.True(t, ok)
	require.Len(t, selected, strataCount)

	for i, q := range selected {
		lo, hi := i*strataWidth, (i+1)*strataWidth
		assert.Greater(t, q.ID, lo)
		assert.LessOrEqual(t, q.ID, hi)
	}
}

func TestSampleStratified_MinimalPool(t *testing.T) {
	// Ровно по одному вопросу в каждом диапазоне: выбор детерминирован.
	rnd := rand.New(rand.NewSource(1))
	pool := poolWithIDs(10, 20, 30, 40, 50, 60, 70, 80, 90, 100)
	selected, ok := sampleStratified(pool, rnd, zap.NewNop())
	require.True(t, ok)
	require.Len(t, selected, strataCount)
	for i, q := range selected {
		assert.Equal(t, (i+1)*strataWidth, q.ID)
	}
}

func TestSampleStratified_EmptyStratum(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	// Диапазон 41..50 пуст.
	var ids []int
	for id := 1; id <= 100; id++ {
		if id > 40 && id <= 50 {
			continue
		}
		ids = append(ids, id)
	}
	selected, ok := sampleStratified(poolWithIDs(ids...), rnd, zap.NewNop())
	assert.False(t, ok)
	assert.Len(t, selected, strataCount-1)
}

func TestSampleStratified_EmptyPool(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	selected, ok := sampleStratified(nil, rnd, zap.NewNop())
	assert.False(t, ok)
	assert.Empty(t, selected)
}

func TestSampleStratified_IDsOutsideRangeIgnored(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	pool := append(fullPool(), poolWithIDs(0, 101, 250)...)
	selected, ok := sampleStratified(pool, rnd, zap.NewNop())
	require.True(t, ok)
	for _, q := range selected {
		assert.Greater(t, q.ID, 0)
		assert.LessOrEqual(t, q.ID, 100)
	}
}
