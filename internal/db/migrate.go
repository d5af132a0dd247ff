package db

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"boost-engine/db/migrations"
)

// Migrate brings the schema at addr to migrations.Version using the SQL files
// embedded in the binary. It refuses to touch a dirty schema or one that is
// newer than this binary.
func Migrate(addr string, logger *slog.Logger) error {
	dsn, err := migrateURL(addr)
	if err != nil {
		return err
	}

	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if err = checkSchema(from, dirty, migrations.Version); err != nil {
		return err
	}

	if err = mg.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("schema up to date", slog.Uint64("version", uint64(from)))
			return nil
		}
		return err
	}
	logger.Info("schema migrated",
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(migrations.Version)),
	)
	return nil
}

// checkSchema rejects a schema that a previous run left half applied or that
// a newer release already moved past target.
func checkSchema(current uint, dirty bool, target uint) error {
	if dirty {
		return fmt.Errorf("schema version %d is dirty, fix it by hand before migrating", current)
	}
	if current > target {
		return fmt.Errorf("schema version %d is newer than this build (%d)", current, target)
	}
	return nil
}

// migrateURL adapts a pgxpool connection string for the migrate postgres
// driver. pgxpool's own pool_* parameters are unknown to the server and are
// dropped.
func migrateURL(addr string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("parse postgres address: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("postgres address must be a postgres:// URL, got scheme %q", u.Scheme)
	}
	q := u.Query()
	for key := range q {
		if strings.HasPrefix(key, "pool_") {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
