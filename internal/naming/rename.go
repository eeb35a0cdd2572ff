// Copyright Pablo Medrano, 2026. All rights reserved.

package naming

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RenameFolder rewrites the multiplicity marker in every PDF basename
// under folder, using the Plain style ("BT14-069-X2_waifu2x_noise3_scale4x.pdf"
// becomes "BT14-069 2 COPIAS.pdf"). Files without the marker are left
// untouched, so a second run is a no-op. Returns the number of files
// renamed.
func RenameFolder(folder string, w io.Writer) (int, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return 0, fmt.Errorf("reading folder %s: %w", folder, err)
	}

	renamed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		ext := filepath.Ext(e.Name())
		base := strings.TrimSuffix(e.Name(), ext)
		newBase := RewriteMarker(base, Plain)
		if newBase == base {
			continue
		}
		newName := Allocate(folder, newBase, ext)
		if err := os.Rename(filepath.Join(folder, e.Name()), filepath.Join(folder, newName)); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", e.Name(), err)
			continue
		}
		fmt.Fprintf(w, "renamed: %s -> %s\n", e.Name(), newName)
		renamed++
	}
	return renamed, nil
}

// WrapFolder applies WrapCopies to every file in folder, renaming the
// ones whose annotation gains parentheses. Returns the number of files
// renamed.
func WrapFolder(folder string, w io.Writer) (int, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return 0, fmt.Errorf("reading folder %s: %w", folder, err)
	}

	renamed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		newName := WrapCopies(e.Name())
		if newName == e.Name() {
			continue
		}
		if err := os.Rename(filepath.Join(folder, e.Name()), filepath.Join(folder, newName)); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", e.Name(), err)
			continue
		}
		fmt.Fprintf(w, "renamed: %s -> %s\n", e.Name(), newName)
		renamed++
	}
	return renamed, nil
}
