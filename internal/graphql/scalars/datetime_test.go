package scalars

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalDateTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	ts := time.Date(2026, 3, 14, 15, 9, 26, 0, loc)

	var buf bytes.Buffer
	MarshalDateTime(ts).MarshalGQL(&buf)

	assert.Equal(t, `"2026-03-14T10:09:26Z"`, buf.String())
}

func TestUnmarshalDateTime(t *testing.T) {
	parsed, err := UnmarshalDateTime("2026-03-14T10:09:26Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 10, 9, 26, 0, time.UTC), parsed.UTC())

	passthrough, err := UnmarshalDateTime(parsed)
	require.NoError(t, err)
	assert.True(t, passthrough.Equal(parsed))

	_, err = UnmarshalDateTime(42)
	assert.Error(t, err)
}
