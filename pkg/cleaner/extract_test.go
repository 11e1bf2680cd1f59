package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPositionalFields(t *testing.T) {
	assert.Equal(t, "X", ExtractCity("X, Y, Z"))
	assert.Equal(t, "Y", ExtractStreet("X, Y, Z"))
	assert.Equal(t, "Z", ExtractHouseNumber("X, Y, Z"))
}

func TestExtractDefaultsForShortAddresses(t *testing.T) {
	assert.Equal(t, "X", ExtractCity("X"))
	assert.Equal(t, "", ExtractStreet("X"))
	assert.Equal(t, "", ExtractHouseNumber("X, Y"))
}

func TestExtractIgnoresTrailingSegments(t *testing.T) {
	assert.Equal(t, "Z", ExtractHouseNumber("X, Y, Z, кв. 4, під'їзд 2"))
}
