package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateBound(t *testing.T) {
	bound, err := ParseDateBound(nil, false)
	assert.NoError(t, err)
	assert.Nil(t, bound)

	empty := ""
	bound, err = ParseDateBound(&empty, false)
	assert.NoError(t, err)
	assert.Nil(t, bound)

	day := "2026-03-15"
	bound, err = ParseDateBound(&day, false)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), *bound)

	bound, err = ParseDateBound(&day, true)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 0, time.Local), *bound)

	bad := "15/03/2026"
	_, err = ParseDateBound(&bad, false)
	assert.Error(t, err)
}
