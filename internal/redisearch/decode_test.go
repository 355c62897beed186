package redisearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelf/recommender/internal/model"
)

// builds a Value the way FromReply would from a raw client reply
func searchReply(t *testing.T, raw any) Value {
	t.Helper()

	v, err := FromReply(raw)
	require.NoError(t, err)

	return v
}

func TestDecodeRecommendations(t *testing.T) {
	reply := searchReply(t, []any{
		int64(2),
		"book:9", []any{"title", "T", "score", "0.10"},
		"book:5", []any{"title", "U", "score", "0.20"},
	})

	got, err := DecodeRecommendations(reply)

	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.Count)
	assert.Equal(t, []model.Recommendation{
		{ID: "book:9", Title: "T", Score: 0.10},
		{ID: "book:5", Title: "U", Score: 0.20},
	}, got.Recommendations, "engine order must be preserved")
}

func TestDecodeRecommendations_CountExceedsWindow(t *testing.T) {
	// count reports total matches, not the returned window
	reply := searchReply(t, []any{
		int64(42),
		"book:1", []any{"title", "A", "score", "0.30"},
	})

	got, err := DecodeRecommendations(reply)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.Count)
	assert.Len(t, got.Recommendations, 1)
}

func TestDecodeRecommendations_EmptyResult(t *testing.T) {
	got, err := DecodeRecommendations(searchReply(t, []any{int64(0)}))

	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.Count)
	assert.Empty(t, got.Recommendations)
}

func TestDecodeRecommendations_UnknownFieldsIgnored(t *testing.T) {
	reply := searchReply(t, []any{
		int64(1),
		"book:1", []any{"title", "A", "__embedding", "blob", "score", "0.50"},
	})

	got, err := DecodeRecommendations(reply)

	require.NoError(t, err)
	assert.Equal(t, model.Recommendation{ID: "book:1", Title: "A", Score: 0.50}, got.Recommendations[0])
}

func TestDecodeRecommendations_Resp3Scores(t *testing.T) {
	// RESP3 delivers scores as doubles instead of bulk strings
	reply := searchReply(t, []any{
		int64(1),
		"book:1", []any{"title", "A", "score", float64(0.25)},
	})

	got, err := DecodeRecommendations(reply)

	require.NoError(t, err)
	assert.Equal(t, float32(0.25), got.Recommendations[0].Score)
}

func TestDecodeRecommendations_OddFieldList(t *testing.T) {
	reply := searchReply(t, []any{
		int64(1),
		"book:1", []any{"title"},
	})

	_, err := DecodeRecommendations(reply)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Reason, "book:1")
}

func TestDecodeRecommendations_DanglingID(t *testing.T) {
	reply := searchReply(t, []any{
		int64(2),
		"book:1", []any{"title", "A", "score", "0.10"},
		"book:2",
	})

	_, err := DecodeRecommendations(reply)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeRecommendations_BadCount(t *testing.T) {
	_, err := DecodeRecommendations(searchReply(t, []any{"not-a-number"}))

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeRecommendations_ScalarFieldList(t *testing.T) {
	reply := searchReply(t, []any{int64(1), "book:1", "not-a-list"})

	_, err := DecodeRecommendations(reply)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Reason, "field list")
}

func TestDecodeRecommendations_ScalarReply(t *testing.T) {
	_, err := DecodeRecommendations(searchReply(t, int64(7)))
	assert.Error(t, err)
}

func TestDecodeRecommendations_EmptyReply(t *testing.T) {
	_, err := DecodeRecommendations(searchReply(t, []any{}))
	assert.Error(t, err)
}
