// Package database provides shared database client helpers for tests.
package database

import (
	"testing"

	"github.com/showroom-hq/showroom/pkg/database"
	"github.com/showroom-hq/showroom/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a shared testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)

	// Cleanup (schema drop, connection close) is handled by SetupTestDatabase
	return database.NewClientFromEnt(entClient, db)
}
