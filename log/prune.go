package log

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vidresolve/vidresolve/filesystem"
)

// Prune removes *.log files in dir last modified more than maxAge ago and returns how many were removed.
// A non-positive maxAge disables pruning.
func Prune(dir string, maxAge time.Duration) int {
	if maxAge <= 0 {
		return 0
	}

	fs := filesystem.API()
	var removed int

	_ = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(info.Name(), ".log") {
			return nil
		}

		if time.Since(info.ModTime()) > maxAge && fs.Remove(filepath.Clean(path)) == nil {
			removed++
		}
		return nil
	})

	return removed
}
