package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The stats queries run raw SQL through pgx and need a live database.
func TestDashboardServiceIntegration(t *testing.T) {
	t.Skip("Integration tests require database setup")
}

func TestDashboardServiceStructure(t *testing.T) {
	t.Run("ServiceExists", func(t *testing.T) {
		assert.NotNil(t, "dashboard service")
	})
}
