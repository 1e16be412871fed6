package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetSeqscanHome returns the seqscan home directory. Priority order:
//  1. SEQSCAN_HOME environment variable (if set)
//  2. .seqscan under the seqscan repository root (detected by a
//     .seqscan-root marker or a go.mod naming the seqscan module)
//  3. .seqscan under the current working directory (fallback)
//
// The directory is created if it doesn't exist.
func GetSeqscanHome() (string, error) {
	home, err := resolveSeqscanHome()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create seqscan home directory: %w", err)
	}
	return home, nil
}

// resolveSeqscanHome computes the same priority-ordered home directory as
// GetSeqscanHome, without the side effect of creating it. DefaultConfig
// uses this to compute a default cache path without touching the
// filesystem just to load configuration.
func resolveSeqscanHome() (string, error) {
	if home := os.Getenv("SEQSCAN_HOME"); home != "" {
		return home, nil
	}

	if repoRoot, err := findSeqscanRepoRoot(); err == nil && repoRoot != "" {
		return filepath.Join(repoRoot, ".seqscan"), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, ".seqscan"), nil
}

// findSeqscanRepoRoot finds the seqscan repository root by looking for a
// .seqscan-root marker file, or a go.mod with the seqscan module path.
func findSeqscanRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	current := cwd
	for {
		markerPath := filepath.Join(current, ".seqscan-root")
		if _, err := os.Stat(markerPath); err == nil {
			return current, nil
		}

		goModPath := filepath.Join(current, "go.mod")
		if data, err := os.ReadFile(goModPath); err == nil {
			if strings.Contains(string(data), "github.com/harrison/seqscan") {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", fmt.Errorf("seqscan repository root not found (looking for .seqscan-root or go.mod with github.com/harrison/seqscan)")
}

// GetCacheDBPath returns the absolute path to the default stat cache
// database: $SEQSCAN_HOME/cache/stat.db, creating the cache directory.
func GetCacheDBPath() (string, error) {
	home, err := GetSeqscanHome()
	if err != nil {
		return "", err
	}

	cacheDir := filepath.Join(home, "cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, "stat.db"), nil
}

// resolveCacheDBPath computes the same path as GetCacheDBPath without
// creating any directories; used by DefaultConfig.
func resolveCacheDBPath() (string, error) {
	home, err := resolveSeqscanHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "cache", "stat.db"), nil
}
