package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	year, month, err := parsePeriod("", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 12, month)

	year, month, err = parsePeriod("2025-07", now)
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 7, month)

	_, _, err = parsePeriod("07/2025", now)
	assert.Error(t, err)
}
