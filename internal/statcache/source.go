package statcache

import (
	"os"

	"github.com/harrison/seqscan/internal/browse"
)

// CachingStatSource wraps a browse.StatSource, serving repeated Stat
// calls for an unchanged path out of a Store instead of re-deriving
// them, keyed by (path, mtime).
type CachingStatSource struct {
	Source browse.StatSource
	Store  *Store
}

// Stat returns absPath's stat info, consulting the cache first and
// falling back to (and populating from) the underlying source on a
// miss or a changed mtime.
func (c CachingStatSource) Stat(absPath string) (browse.Stat, error) {
	info, err := os.Lstat(absPath)
	if err != nil {
		return browse.Stat{}, err
	}

	if cached, ok, err := c.Store.Get(absPath, info.ModTime()); err == nil && ok {
		return cached, nil
	}

	st, err := c.Source.Stat(absPath)
	if err != nil {
		return browse.Stat{}, err
	}

	_ = c.Store.Put(absPath, st)
	return st, nil
}
