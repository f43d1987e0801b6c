// Package cache maintains the localized cache directory shared by the
// version check and audit history stores.
package cache

import (
	"os"
	"time"

	"github.com/oklint-cli/oklint/filesystem"
	"github.com/oklint-cli/oklint/where"
)

const TTL = 7 * 24 * time.Hour

// CollectGarbage initializes an asynchronous background task to prune expired cache entries from the filesystem.
func CollectGarbage() {
	go func() {
		dir := where.Cache()
		_ = filesystem.API().Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if time.Since(info.ModTime()) > TTL {
				_ = filesystem.API().Remove(path)
			}
			return nil
		})
	}()
}
