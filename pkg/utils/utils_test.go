package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 1.98, RoundFloat(1.980198, 2))
	assert.Equal(t, 2.72, RoundFloat(2.71828, 2))
	assert.Equal(t, -1.24, RoundFloat(-1.2376, 2))
	assert.Equal(t, 0.0, RoundFloat(0, 2))
}

func TestStripExchangeSuffix(t *testing.T) {
	assert.Equal(t, "RELIANCE", StripExchangeSuffix("RELIANCE.BSE"))
	assert.Equal(t, "TCS", StripExchangeSuffix("TCS.NS"))
	assert.Equal(t, "INFY", StripExchangeSuffix("INFY"))
	assert.Equal(t, ".BSE", StripExchangeSuffix(".BSE"))
}
