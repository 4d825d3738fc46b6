package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1200.00", FormatPrice(1200))
	assert.Equal(t, "99.90", FormatPrice(99.9))
	assert.Equal(t, "0.10", FormatPrice(0.1))
	assert.Equal(t, "1234.57", FormatPrice(1234.567))
}
