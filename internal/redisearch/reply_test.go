package redisearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReply_Scalars(t *testing.T) {
	v, err := FromReply(int64(5))
	require.NoError(t, err)
	assert.Equal(t, KindInteger, v.Kind())

	v, err = FromReply("hello")
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind())

	v, err = FromReply([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind(), "bulk strings arrive as []byte")

	v, err = FromReply(float64(1.5))
	require.NoError(t, err)
	assert.Equal(t, KindDouble, v.Kind())

	v, err = FromReply(nil)
	require.NoError(t, err)
	assert.Equal(t, KindNil, v.Kind())
}

func TestFromReply_Nested(t *testing.T) {
	v, err := FromReply([]any{int64(1), []any{"a", "b"}})

	require.NoError(t, err)

	elems, ok := v.Array()
	require.True(t, ok)
	require.Len(t, elems, 2)

	inner, ok := elems[1].Array()
	require.True(t, ok)
	assert.Len(t, inner, 2)
}

func TestFromReply_UnsupportedType(t *testing.T) {
	_, err := FromReply(struct{}{})

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestValueCoercions(t *testing.T) {
	n, err := String("17").Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(17), n)

	_, err = Integer(-1).Uint64()
	assert.Error(t, err, "negative counts are a shape mismatch")

	s, err := Integer(42).AsString()
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	f, err := String("0.125").Float32()
	require.NoError(t, err)
	assert.Equal(t, float32(0.125), f)

	_, err = Array().Float32()
	assert.Error(t, err)
}
