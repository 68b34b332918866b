package config

import (
	"errors"
	"fmt"

	"github.com/sidereusnuntius/gosocial/internal/domain"
	"github.com/spf13/viper"
)

const (
	SQLiteStorage = "sqlite"
	FileStorage   = "file"
)

const EnvPrefix = "GOSOCIAL"

type Configuration struct {
	// Debug, if true, lowers the log level to debug and logs every HTTP request.
	Debug bool
	Port  uint16
	// Storage selects the Persistent Store backend: SQLiteStorage or FileStorage.
	Storage string
	// DbUrl is the SQLite connection string, used when Storage is SQLiteStorage.
	DbUrl            string
	MigrationsFolder string
	// FsRoot is the directory holding one file per key, used when Storage is FileStorage.
	FsRoot string
	// SeedDemo inserts the demo posts on the first start against an empty store.
	SeedDemo     bool
	DefaultTheme string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("port", 8080)
	v.SetDefault("storage", SQLiteStorage)
	v.SetDefault("dburl", "gosocial.db")
	v.SetDefault("migrationsfolder", "migrations")
	v.SetDefault("fsroot", "data")
	v.SetDefault("seeddemo", true)
	v.SetDefault("defaulttheme", string(domain.Light))
}

// ReadConfig loads gosocial.yaml from the given directories (the working directory and /etc/gosocial
// when none are given), then applies GOSOCIAL_* environment overrides. A missing file is not an error.
func ReadConfig(paths ...string) (cfg Configuration, err error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("gosocial")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "/etc/gosocial"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return
	}

	err = cfg.Validate()
	return
}

func (c *Configuration) Validate() error {
	var errs []error
	switch c.Storage {
	case SQLiteStorage:
		if c.DbUrl == "" {
			errs = append(errs, errors.New("empty dburl"))
		}
	case FileStorage:
		if c.FsRoot == "" {
			errs = append(errs, errors.New("empty fsroot"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}

	if _, err := domain.ParseTheme(c.DefaultTheme); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
