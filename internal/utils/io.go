// Package utils provides internal helpers for the delivery layer, currently
// limited to file path hygiene for the file sink.
package utils

import (
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// SanitizePath normalizes a log file path and rejects directory traversal
// sequences. Absolute paths are allowed: a log sink legitimately writes
// wherever the operator points it, but a path that still contains ".." after
// cleaning is refused.
func SanitizePath(path string) (string, error) {
	if path == "" {
		return "", ewrap.New("path cannot be empty")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return "", ewrap.New("path contains directory traversal sequence").
			WithMetadata("path", path)
	}

	return cleanPath, nil
}
