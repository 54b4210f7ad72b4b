package containers

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	defaultImage = "postgres:16.3-alpine"
	dbName       = "league_dashboard"
	dbUser       = "dashuser"
	dbPassword   = "secret"
)

// DBContainer wraps a throwaway postgres instance with the dashboard schema
// already applied. Test packages share one container through TestMain.
type DBContainer struct {
	container *postgres.PostgresContainer
}

func NewDBContainer() *DBContainer {
	ctx := context.Background()

	// TEST_POSTGRES_IMAGE lets CI point at a mirrored registry.
	image := os.Getenv("TEST_POSTGRES_IMAGE")
	if image == "" {
		image = defaultImage
	}

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.WithInitScripts(schemaFile()),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("error starting postgres container: %v", err)
	}

	return &DBContainer{container: container}
}

// schemaFile resolves schema/schema.sql relative to the package directory the
// tests run in.
func schemaFile() string {
	return filepath.Join("..", "schema", "schema.sql")
}

func (c *DBContainer) Shutdown() {
	if err := c.container.Terminate(context.Background()); err != nil {
		log.Printf("error terminating postgres container: %v", err)
	}
}

// ConnectionString disables sslmode because the container has no TLS setup.
func (c *DBContainer) ConnectionString() string {
	connStr, err := c.container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		log.Fatalf("error getting connection string: %v", err)
	}
	return connStr
}
