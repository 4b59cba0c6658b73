package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDiscountCaseInsensitive(t *testing.T) {
	for _, code := range []string{"SAVE10", "save10", "Save10", " save10 "} {
		fraction, ok := LookupDiscount(code)
		require.True(t, ok, "code %q", code)
		assert.True(t, fraction.Equal(decimal.NewFromFloat(0.10)), "code %q", code)
	}

	fraction, ok := LookupDiscount("welcome20")
	require.True(t, ok)
	assert.True(t, fraction.Equal(decimal.NewFromFloat(0.20)))
}

func TestLookupDiscountEmptyCode(t *testing.T) {
	fraction, ok := LookupDiscount("")
	assert.True(t, ok)
	assert.True(t, fraction.IsZero())
}

func TestLookupDiscountUnknownCode(t *testing.T) {
	fraction, ok := LookupDiscount("BOGUS50")
	assert.False(t, ok)
	assert.True(t, fraction.IsZero())
}
