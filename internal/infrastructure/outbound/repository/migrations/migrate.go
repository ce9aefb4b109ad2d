package migrations

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	ports "blog-service/internal/domain/ports/output"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// UpPostgres applies the postgres schema. dsn is a postgres:// or
// postgresql:// URL.
func UpPostgres(dsn string, log ports.Logger) error {
	url := dsn
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, scheme) {
			url = "pgx5://" + strings.TrimPrefix(dsn, scheme)
			break
		}
	}
	return up("postgres", url, log)
}

// UpSQLite applies the sqlite schema to the database file at path.
func UpSQLite(path string, log ports.Logger) error {
	return up("sqlite", "sqlite://"+path, log)
}

func up(dir, databaseURL string, log ports.Logger) error {
	src, err := iofs.New(files, dir)
	if err != nil {
		return fmt.Errorf("open %s migrations: %w", dir, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("init %s migrations: %w", dir, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Warn("Failed to close migration source", slog.String("error", srcErr.Error()))
		}
		if dbErr != nil {
			log.Warn("Failed to close migration database", slog.String("error", dbErr.Error()))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debug("Migrations already applied", slog.String("driver", dir))
			return nil
		}
		return fmt.Errorf("apply %s migrations: %w", dir, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read %s migration version: %w", dir, err)
	}
	log.Info("Migrations applied",
		slog.String("driver", dir),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty))
	return nil
}
