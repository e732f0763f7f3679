// =============================================================================
// Data Formatter - File Utilities
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// Extension returns the lowercase file extension without the dot.
func Extension(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
