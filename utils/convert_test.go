package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLbToKg(t *testing.T) {
	assert.InDelta(t, 90.7184, LbToKg(200), 0.0001)
	assert.Zero(t, LbToKg(0))
}

func TestInToCm(t *testing.T) {
	assert.InDelta(t, 177.8, InToCm(70), 0.0001)
}
