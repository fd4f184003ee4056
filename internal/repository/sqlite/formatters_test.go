package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	at := time.Date(2026, 8, 30, 15, 4, 5, 0, loc)

	formatted := FormatTimeForDB(at)
	assert.Equal(t, "2026-08-30T15:04:05+01:00", formatted)
}

func TestParseTimeFromDB(t *testing.T) {
	parsed, err := ParseTimeFromDB("2026-08-30T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 15, parsed.Hour())
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	parsed, err := ParseTimeFromDB(FormatTimeForDB(now))
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))
}

func TestParseTimeFromDB_Invalid(t *testing.T) {
	_, err := ParseTimeFromDB("not a time")
	assert.Error(t, err)
}
