package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_TextualDate(t *testing.T) {
	d, ok := Resolve("Nov 30, 2025")
	require.True(t, ok)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.November, d.Month())
	assert.Equal(t, 30, d.Day())
}

func TestResolve_DayFirstTokens(t *testing.T) {
	d, ok := Resolve("30/11/2025")
	require.True(t, ok)
	assert.Equal(t, time.November, d.Month())
	assert.Equal(t, 30, d.Day())
}

func TestResolve_DayFirstAgreesWithTextual(t *testing.T) {
	tokens, ok := Resolve("30/11/2025")
	require.True(t, ok)
	textual, ok := Resolve("Nov 30, 2025")
	require.True(t, ok)
	assert.True(t, tokens.Equal(textual), "day-first tokens and textual form must resolve identically")
}

func TestResolve_ISOAndRFC3339(t *testing.T) {
	iso, ok := Resolve("2025-11-30")
	require.True(t, ok)
	assert.Equal(t, 30, iso.Day())

	rfc, ok := Resolve("2025-11-30T18:45:00Z")
	require.True(t, ok)
	assert.True(t, rfc.Equal(iso), "time of day must be discarded")
}

func TestResolve_NormalizesToMidnight(t *testing.T) {
	d, ok := Resolve("2025-11-30T18:45:00Z")
	require.True(t, ok)
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}

func TestResolve_DashSeparatedTokens(t *testing.T) {
	d, ok := Resolve("05-01-2026")
	require.True(t, ok)
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 2026, d.Year())
}

func TestResolve_Invalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"not a date",
		"13/45/2025",   // month out of range
		"31/02/2025",   // no Feb 31
		"30/2/2025",    // no Feb 30
		"1/2",          // two tokens
		"1/2/3/4",      // four tokens
		"a/b/c",        // non-numeric
		"12/0/2025",    // month zero
		"0/5/2025",     // day zero
		"soon",
		"next week",
	}
	for _, raw := range cases {
		_, ok := Resolve(raw)
		assert.False(t, ok, "expected %q to be unresolvable", raw)
	}
}

func TestResolve_LeapDay(t *testing.T) {
	_, ok := Resolve("29/02/2025")
	assert.False(t, ok, "2025 is not a leap year")

	d, ok := Resolve("29/02/2024")
	require.True(t, ok)
	assert.Equal(t, 29, d.Day())
}
