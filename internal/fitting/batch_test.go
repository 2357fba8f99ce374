package fitting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_MixedValidity(t *testing.T) {
	requests := []Request{
		{ID: "a", Height: 180, Weight: 75, Archetype: "inverted-triangle"},
		{ID: "b", Height: 90, Weight: 75, Archetype: "slim"},
		{ID: "c", Height: 170, Weight: 65, Archetype: "pear"},
		{ID: "d", Height: 170, Weight: 65, Archetype: "rectangle"},
	}

	items, err := RunBatch(context.Background(), requests, menShirt(t), 2)
	require.NoError(t, err)
	require.Len(t, items, 4)

	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, requests[i].ID, item.ID)
	}

	require.NotNil(t, items[0].Result)
	assert.Equal(t, "XXL", items[0].Result.Recommendation.Size)

	assert.Nil(t, items[1].Result)
	assert.Contains(t, items[1].Error, "height")

	assert.Nil(t, items[2].Result)
	assert.Contains(t, items[2].Error, "unknown archetype")

	require.NotNil(t, items[3].Result)
	assert.Equal(t, "XS", items[3].Result.Recommendation.Size)
}

func TestRunBatch_ManyConcurrent(t *testing.T) {
	requests := make([]Request, 0, 200)
	for i := 0; i < 200; i++ {
		requests = append(requests, Request{Height: 150 + float64(i%60), Weight: 50 + float64(i%70), Archetype: "round"})
	}

	items, err := RunBatch(context.Background(), requests, menShirt(t), 0)
	require.NoError(t, err)
	require.Len(t, items, 200)

	// Same inputs give the same size regardless of scheduling.
	for i, item := range items {
		require.NotNil(t, item.Result, "item %d", i)
		single := runOne(i, requests[i], menShirt(t))
		assert.Equal(t, single.Result.Recommendation, item.Result.Recommendation)
	}
}

func TestRunBatch_Empty(t *testing.T) {
	items, err := RunBatch(context.Background(), nil, menShirt(t), 4)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRunBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, []Request{{Height: 170, Weight: 65, Archetype: "slim"}}, menShirt(t), 1)
	assert.ErrorIs(t, err, context.Canceled)
}
