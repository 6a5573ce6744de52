package config_test

import (
	"testing"
	"time"

	"offboardadmin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", s.APIBaseURL)
	assert.Equal(t, 30*time.Second, s.APITimeout)
	assert.Equal(t, 20, s.PerPage)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "8080", s.StubPort)
	assert.Equal(t, 6, s.DashboardMes)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OFFBOARD_PER_PAGE", "5")
	t.Setenv("OFFBOARD_API_BASE_URL", "http://backend:9000")

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5, s.PerPage)
	assert.Equal(t, "http://backend:9000", s.APIBaseURL)
}
