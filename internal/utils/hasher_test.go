package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashDeterministic(t *testing.T) {
	assert.Equal(t, Hash("abc"), Hash("abc"))
	assert.NotEqual(t, Hash("abc"), Hash("abd"))
	assert.Len(t, Hash("abc"), 64)
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, Hash("abc")[:12], ShortHash("abc"))
	assert.Len(t, ShortHash(""), 12)
}
