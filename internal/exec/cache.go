package exec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	errUtils "github.com/carbon-design-system/carb/errors"
	log "github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/xdg"
)

const (
	cacheLockRetries = 50
	cacheLockBackoff = 10 * time.Millisecond
)

// ExecuteCacheClean deletes the carb cache directory and reports how many
// entries it held. The directory is removed under an exclusive lock file
// next to it, so concurrent carb processes do not write into a
// half-deleted cache.
func ExecuteCacheClean(out io.Writer) error {
	dir, err := xdg.GetXDGCacheDir("", 0o755)
	if err != nil {
		return fmt.Errorf("%w: %w", errUtils.ErrCacheDir, err)
	}

	var count int
	err = withCacheLock(dir+".lock", func() error {
		count, err = cleanDir(dir)
		return err
	})
	if err != nil {
		return err
	}

	return writeString(out, fmt.Sprintf("%s Deleted %d files/directories from %s\n", checkMark, count, dir))
}

func withCacheLock(lockPath string, fn func() error) error {
	lock := flock.New(lockPath)

	var locked bool
	var err error
	for range cacheLockRetries {
		locked, err = lock.TryLock()
		if err != nil {
			return fmt.Errorf("%w: %w", errUtils.ErrCacheLocked, err)
		}
		if locked {
			break
		}
		time.Sleep(cacheLockBackoff)
	}
	if !locked {
		return errUtils.Build(fmt.Errorf("%w: %s", errUtils.ErrCacheLocked, lockPath)).
			WithHint("Wait for the other carb process to finish and try again").
			Err()
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Trace("Failed to unlock cache", "err", err, "path", lockPath)
		}
	}()
	return fn()
}

// cleanDir counts the entries below dir, then removes dir. A missing
// directory counts as empty.
func cleanDir(dir string) (int, error) {
	count := 0
	err := filepath.Walk(dir, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path != dir {
			count++
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("%w: failed to count files in %s: %w", errUtils.ErrCacheClean, dir, err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("%w: failed to delete %s: %w", errUtils.ErrCacheClean, dir, err)
	}
	log.Info("Removed cache directory", "dir", dir, "entries", count)
	return count, nil
}
