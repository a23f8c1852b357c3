package writectx_test

import (
	"testing"

	"github.com/PM-IDE/bxes/value"
	"github.com/PM-IDE/bxes/writectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternValueDeduplicatesEqualValues(t *testing.T) {
	ctx := writectx.New()

	idx1 := ctx.InternValue(value.String("a"))
	idx2 := ctx.InternValue(value.Int32(1))
	idx3 := ctx.InternValue(value.String("a"))

	assert.Equal(t, idx1, idx3)
	assert.NotEqual(t, idx1, idx2)
	assert.Equal(t, 2, ctx.ValueCount())
}

func TestInternValueAssignsFirstSeenOrder(t *testing.T) {
	ctx := writectx.New()

	ctx.InternValue(value.Int32(1))
	ctx.InternValue(value.Int32(2))
	ctx.InternValue(value.Int32(3))

	values := ctx.Values()
	require.Len(t, values, 3)
	assert.Equal(t, value.Int32(1), values[0])
	assert.Equal(t, value.Int32(2), values[1])
	assert.Equal(t, value.Int32(3), values[2])
}

func TestLookupValueMissing(t *testing.T) {
	ctx := writectx.New()
	ctx.InternValue(value.Int32(1))

	_, ok := ctx.LookupValue(value.Int32(2))
	assert.False(t, ok)
}

func TestInternPairDeduplicates(t *testing.T) {
	ctx := writectx.New()

	idx1 := ctx.InternPair(value.String("k"), value.Int32(1))
	idx2 := ctx.InternPair(value.String("k"), value.Int32(2))
	idx3 := ctx.InternPair(value.String("k"), value.Int32(1))

	assert.Equal(t, idx1, idx3)
	assert.NotEqual(t, idx1, idx2)
	assert.Equal(t, 2, ctx.PairCount())
}

func TestValueAndPairIndexSpacesAreIndependent(t *testing.T) {
	ctx := writectx.New()

	valueIdx := ctx.InternValue(value.String("shared"))
	pairIdx := ctx.InternPair(value.String("shared"), value.String("shared"))

	// Both tables start their own count at zero; a pair index of 0 says
	// nothing about the value index of its key or its value.
	assert.Equal(t, uint32(0), valueIdx)
	assert.Equal(t, uint32(0), pairIdx)

	lookedUp, ok := ctx.LookupValue(value.String("shared"))
	require.True(t, ok)
	assert.Equal(t, valueIdx, lookedUp)
}
