package pkg

import (
	"os"
	"path/filepath"
	"sync"
)

// ConfigDir returns the directory searched for config.json and config.yaml.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the directory holding the line editor history and
// profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// userDir returns the [Name] subdirectory of the directory reported by lookup.
// If lookup fails, it falls back to hidden under the home directory, then to
// a dot-directory in the working directory.
func userDir(lookup func() (string, error), hidden string) string {
	if dir, err := lookup(); err == nil && dir != "" {
		return filepath.Join(dir, Name)
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, hidden, Name)
	}

	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "."+Name)
	}

	return "." + Name
}
