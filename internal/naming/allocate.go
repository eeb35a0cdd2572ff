// Copyright Pablo Medrano, 2026. All rights reserved.

// Package naming implements collision-free output naming and the
// multiplicity-marker filename convention.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
)

// Allocate returns a filename that does not exist in folder at call
// time. It starts with base+ext and probes "base (N)ext" for N = 1, 2,
// ... until a free name is found. It does not create the file; the
// caller owns the window between allocation and creation, so the
// guarantee holds only without concurrent writers to the same folder.
func Allocate(folder, base, ext string) string {
	name := base + ext
	for counter := 1; exists(filepath.Join(folder, name)); counter++ {
		name = fmt.Sprintf("%s (%d)%s", base, counter, ext)
	}
	return name
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
