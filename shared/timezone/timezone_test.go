package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buslink/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-09-10")

	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 10, parsed.Day())

	_, err = timezone.Parse("2006-01-02", "next tuesday")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-09-10")
	require.NoError(t, err)

	assert.Equal(t, "2026-09-10", timezone.Format(parsed, "2006-01-02"))
}
