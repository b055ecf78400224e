package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrationFiles_SortedSQLOnly(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	for _, name := range []string{"0002_seed.sql", "README.md", "0001_init.sql"} {
		req.NoError(os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o600))
	}
	req.NoError(os.Mkdir(filepath.Join(dir, "archive"), 0o700))

	files, err := migrationFiles(dir)
	req.NoError(err)
	req.Equal([]string{"0001_init.sql", "0002_seed.sql"}, files)

	_, err = migrationFiles(filepath.Join(dir, "missing"))
	req.Error(err)
}

func TestRunMigrations_NoPoolIsNoop(t *testing.T) {
	req := require.New(t)
	n, err := RunMigrations(context.Background(), nil, "does-not-matter", zap.NewNop())
	req.NoError(err)
	req.Zero(n)
}

func TestNilWrappersAreSafe(t *testing.T) {
	req := require.New(t)
	var pg *Postgres
	req.Nil(pg.PoolHandle())
	req.Error(pg.Ping(context.Background()))
	pg.Close()

	var r *Redis
	req.Error(r.Ping(context.Background()))
	r.Close()
}

func TestDefaultMigrationsShipWithRepo(t *testing.T) {
	req := require.New(t)
	files, err := migrationFiles(filepath.Join("..", "..", DefaultMigrationsDir))
	req.NoError(err)
	req.Equal([]string{"0001_init.sql", "0002_seed.sql"}, files)
}
