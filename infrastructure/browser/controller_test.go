package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClosedErr(t *testing.T) {
	assert.True(t, isClosedErr(errors.New("Target page, context or browser has been closed")))
	assert.True(t, isClosedErr(errors.New("target closed")))
	assert.False(t, isClosedErr(errors.New("timeout 30000ms exceeded")))
}

func TestCloseIsIdempotent(t *testing.T) {
	b := &browserController{}
	assert.NoError(t, b.Close())
	assert.NoError(t, b.Close())
}
