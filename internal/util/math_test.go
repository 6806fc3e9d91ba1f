package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	assert.Equal(t, 5, Coerce(5, 0, 10))
	assert.Equal(t, 0, Coerce(-3, 0, 10))
	assert.Equal(t, 10, Coerce(82, 0, 10))
	assert.Equal(t, 2.5, Coerce(2.5, 0.0, 10.0))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(1, 1, 35))
	assert.True(t, InRange(35, 1, 35))
	assert.False(t, InRange(0, 1, 35))
	assert.False(t, InRange(36, 1, 35))
}
