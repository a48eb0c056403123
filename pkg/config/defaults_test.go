package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("AD_TEST_STRING", "override")
	assert.Equal(t, "override", getEnvString("AD_TEST_STRING", "default"))
	assert.Equal(t, "default", getEnvString("AD_TEST_STRING_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("AD_TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("AD_TEST_INT", 7))

	t.Setenv("AD_TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, getEnvInt("AD_TEST_INT_BAD", 7))

	assert.Equal(t, 7, getEnvInt("AD_TEST_INT_UNSET", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("AD_TEST_BOOL", "false")
	assert.False(t, getEnvBool("AD_TEST_BOOL", true))

	t.Setenv("AD_TEST_BOOL_BAD", "maybe")
	assert.True(t, getEnvBool("AD_TEST_BOOL_BAD", true))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("AD_TEST_DURATION", "30s")
	assert.Equal(t, 30*time.Second, getEnvDuration("AD_TEST_DURATION", time.Minute))

	t.Setenv("AD_TEST_DURATION_BAD", "soon")
	assert.Equal(t, time.Minute, getEnvDuration("AD_TEST_DURATION_BAD", time.Minute))
}

func TestDefaults(t *testing.T) {
	assert.NotEmpty(t, Port)
	assert.NotEmpty(t, UpstreamBaseURL)
	assert.Positive(t, IconMaxWidth)
	assert.Positive(t, NotificationRingSize)
}
