package database

import (
	"testing"

	"github.com/maestro-ai/maestro/pkg/database"
	"github.com/maestro-ai/maestro/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a PostgreSQL testcontainer.
// The container/connection is cleaned up automatically when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
