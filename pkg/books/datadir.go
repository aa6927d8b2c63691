package books

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName names the directory the tool owns inside the per-user data and
// config locations.
const appDirName = "books"

// databaseFile is the database file name inside the data directory.
const databaseFile = "database.sqlite3"

// DataDir resolves the per-user data directory for the database:
// $XDG_DATA_HOME/books when XDG_DATA_HOME is set, the platform's
// application-data location under the home directory otherwise.
func DataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", wrapf(KindEnvironment, err, "cannot determine home directory")
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appDirName), nil
	case "windows":
		if dir := os.Getenv("AppData"); dir != "" {
			return filepath.Join(dir, appDirName), nil
		}
		return filepath.Join(home, "AppData", "Roaming", appDirName), nil
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// ensureDataDir creates dir with owner-only permissions when absent.
func ensureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return wrapf(KindEnvironment, err, "cannot create %s", dir)
	}
	return nil
}
