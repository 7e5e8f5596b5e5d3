package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUTC(t *testing.T) {
	got, err := ParseUTC("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseUTC("09/01/2026")
	assert.Error(t, err)
	_, err = ParseUTC("")
	assert.Error(t, err)
}

func TestFormatRoundTrip(t *testing.T) {
	got, err := ParseUTC("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", Format(got))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Sep 1, 2026", Display("2026-09-01"))
	// Malformed model output still shows up, unchanged.
	assert.Equal(t, "soon", Display("soon"))
	assert.Equal(t, "", Display(""))
}

func TestDisplayRange(t *testing.T) {
	assert.Equal(t, "Sep 1, 2026 — Oct 31, 2026", DisplayRange("2026-09-01", "2026-10-31"))
}

func TestAddDays(t *testing.T) {
	start, err := ParseUTC("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-19", Format(AddDays(start, -10)))
	assert.Equal(t, "2026-03-31", Format(AddDays(start, 30)))
}

func TestDaysBetween(t *testing.T) {
	a, err := ParseUTC("2026-09-01")
	require.NoError(t, err)
	b, err := ParseUTC("2026-09-30")
	require.NoError(t, err)

	assert.Equal(t, 29, DaysBetween(a, b))
	assert.Equal(t, -29, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}
