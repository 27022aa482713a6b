package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	c, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 31, c.RotaDays)
	assert.False(t, c.AllowDoubleBooking)
	assert.True(t, c.SeedDemo)
	assert.Equal(t, 12*time.Hour, c.JWTTTL)
	assert.Equal(t, "manager", c.ManagerUsername)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ROTA_DAYS", "28")
	t.Setenv("ROTA_ALLOW_DOUBLE_BOOKING", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "30m")

	c, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, 28, c.RotaDays)
	assert.True(t, c.AllowDoubleBooking)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, 30*time.Minute, c.JWTTTL)
}

func TestParse_Invalid(t *testing.T) {
	t.Run("negative days", func(t *testing.T) {
		t.Setenv("ROTA_DAYS", "-1")
		_, err := Parse()
		assert.Error(t, err)
	})

	t.Run("zero days", func(t *testing.T) {
		t.Setenv("ROTA_DAYS", "0")
		_, err := Parse()
		assert.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("ROTA_ALLOW_DOUBLE_BOOKING", "maybe")
		_, err := Parse()
		assert.Error(t, err)
	})
}
