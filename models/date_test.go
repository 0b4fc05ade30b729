package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"10-03-2025", "2025/03/10", "March 10", ""} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2025-03-10"))
	assert.Equal(t, "2025-03-10", d.String())

	// drivers may hand back timestamps for date columns
	require.NoError(t, d.Scan("2025-03-10 00:00:00+00:00"))
	assert.Equal(t, "2025-03-10", d.String())

	require.NoError(t, d.Scan(time.Date(2025, 3, 10, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, "2025-03-10", d.String())
}

func TestNewDateStripsTime(t *testing.T) {
	d := NewDate(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC))
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", v)
}
