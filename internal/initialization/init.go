// The init package contains functions that setup required dependencies such as the Persistent Store.
package initialization

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/config"
	"github.com/sidereusnuntius/gosocial/internal/storage"
	"github.com/sidereusnuntius/gosocial/internal/storage/filestore"
	"github.com/sidereusnuntius/gosocial/internal/storage/sqlitestore"
)

// SetupDB applies all remaining migrations found in folder.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("schema is up to date")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to run migrations")
	}
	return err
}

func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
		return nil, err
	}
	// A single connection keeps in-memory databases alive and serializes writers.
	db.SetMaxOpenConns(1)
	return db, nil
}

// OpenStore builds the Persistent Store selected by the configuration. The returned close function
// releases the backend's resources.
func OpenStore(cfg *config.Configuration) (store storage.Store, closeFn func() error, err error) {
	closeFn = func() error { return nil }

	switch cfg.Storage {
	case config.FileStorage:
		store, err = filestore.New(cfg.FsRoot)
		return
	case config.SQLiteStorage:
		var db *sql.DB
		if db, err = OpenDB(cfg.DbUrl); err != nil {
			return
		}
		if err = SetupDB(db, cfg.MigrationsFolder, cfg.DbUrl); err != nil {
			db.Close()
			return
		}
		return sqlitestore.New(db), db.Close, nil
	default:
		err = fmt.Errorf("unknown storage %q", cfg.Storage)
		return
	}
}
