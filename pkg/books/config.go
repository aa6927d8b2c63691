package books

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries the settings a run can override: where the database lives,
// which directory holds the personal website, and which pager to use. The
// zero value resolves everything from the environment.
type Config struct {
	// DatabasePath, when set, is used directly and no data directory is
	// created or consulted.
	DatabasePath string

	// WebsiteDir is the directory whose Makefile rebuilds the personal
	// website after a successful mutation. Empty disables the rebuild.
	WebsiteDir string

	// Pager overrides $PAGER for ls and show output.
	Pager string
}

// Config file keys.
const (
	keyDatabase   = "DATABASE"
	keyWebsiteDir = "WEBSITE_DIR"
	keyPager      = "PAGER"
)

// DefaultConfigPath returns the per-user config file location,
// <user config dir>/books/config.env.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", wrapf(KindEnvironment, err, "cannot determine config directory")
	}
	return filepath.Join(dir, appDirName, "config.env"), nil
}

// LoadConfig reads the env-format config file at path. A missing file yields
// the zero Config; a file that exists but cannot be parsed is an error.
func LoadConfig(path string) (Config, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, wrapf(KindEnvironment, err, "cannot read %s", path)
	}
	return Config{
		DatabasePath: vals[keyDatabase],
		WebsiteDir:   vals[keyWebsiteDir],
		Pager:        vals[keyPager],
	}, nil
}
