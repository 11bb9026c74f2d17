//go:build !windows

package config

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic replaces path in one rename so watchers never observe a partial file
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
