package utils

import (
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
)

// ExpandPath resolves a leading ~ to the user's home directory.
// Paths that fail to expand are returned untouched so the caller's
// open attempt reports the real error.
func ExpandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		log.Debugf("Could not expand path %s: %v", path, err)
		return path
	}
	return expanded
}
