package testutils

import (
	"os"
	"path/filepath"
)

// SetRoot walks up from the working directory until it finds go.mod and
// chdirs there, so config.toml resolves no matter which package a test
// runs from. Outside a checkout it leaves the working directory alone and
// config defaults apply.
func SetRoot() {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
	os.Chdir(dir)
}
