package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMillisUnmarshal(t *testing.T) {
	var d DateMillis

	require.NoError(t, json.Unmarshal([]byte(`1710000000000`), &d))
	assert.Equal(t, DateMillis(1710000000000), d)

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09T15:30:00Z"`), &d))
	assert.Equal(t, "2024-03-09T15:30:00Z", d.Time().Format("2006-01-02T15:04:05Z07:00"))

	for _, bad := range []string{`"yesterday"`, `true`, `{"ms":1}`, `[1]`, `null`} {
		assert.Error(t, json.Unmarshal([]byte(bad), &d), "input %s", bad)
	}
}

func TestDateMillisMarshalRoundTrip(t *testing.T) {
	d := DateMillis(1710000000000)
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "1710000000000", string(out))

	var back DateMillis
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, d, back)
}
