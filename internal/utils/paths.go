package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	if xdg.Home != "" {
		return xdg.Home
	}
	home, _ := os.UserHomeDir()
	return home
}

// NormalizePath cleans path and strips trailing separators. Relative paths
// are returned cleaned but unresolved.
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(ExpandHome(path))
}

// IsWithin reports whether path equals root or lies beneath it. Both are
// normalised first; a root of "" contains nothing and sibling directories
// sharing a prefix ("/a/b" vs "/a/bc") are not contained.
func IsWithin(root, path string) bool {
	root = NormalizePath(root)
	path = NormalizePath(path)
	if root == "" || path == "" || !filepath.IsAbs(root) || !filepath.IsAbs(path) {
		return false
	}
	if root == path {
		return true
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
