package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadConfig(t *testing.T) {
	empty := t.TempDir()
	withFile := t.TempDir()
	yaml := "storage: file\nfsroot: /var/lib/gosocial\nport: 9000\ndefaulttheme: dark\n"
	if err := os.WriteFile(filepath.Join(withFile, "gosocial.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		dir      string
		env      map[string]string
		expected Configuration
		expErr   bool
	}{
		{
			name: "defaults",
			dir:  empty,
			expected: Configuration{
				Port:             8080,
				Storage:          SQLiteStorage,
				DbUrl:            "gosocial.db",
				MigrationsFolder: "migrations",
				FsRoot:           "data",
				SeedDemo:         true,
				DefaultTheme:     "light",
			},
		},
		{
			name: "file",
			dir:  withFile,
			expected: Configuration{
				Port:             9000,
				Storage:          FileStorage,
				DbUrl:            "gosocial.db",
				MigrationsFolder: "migrations",
				FsRoot:           "/var/lib/gosocial",
				SeedDemo:         true,
				DefaultTheme:     "dark",
			},
		},
		{
			name: "environment overrides file",
			dir:  withFile,
			env:  map[string]string{"GOSOCIAL_PORT": "7000", "GOSOCIAL_SEEDDEMO": "false", "GOSOCIAL_DEBUG": "true"},
			expected: Configuration{
				Debug:            true,
				Port:             7000,
				Storage:          FileStorage,
				DbUrl:            "gosocial.db",
				MigrationsFolder: "migrations",
				FsRoot:           "/var/lib/gosocial",
				SeedDemo:         false,
				DefaultTheme:     "dark",
			},
		},
		{
			name:   "unknown storage",
			dir:    empty,
			env:    map[string]string{"GOSOCIAL_STORAGE": "s3"},
			expErr: true,
		},
		{
			name:   "unknown theme",
			dir:    empty,
			env:    map[string]string{"GOSOCIAL_DEFAULTTHEME": "sepia"},
			expErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k, v := range c.env {
				t.Setenv(k, v)
			}

			cfg, err := ReadConfig(c.dir)
			if c.expErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(c.expected, cfg); diff != "" {
				t.Error(diff)
			}
		})
	}
}
