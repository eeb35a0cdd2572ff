// Copyright Pablo Medrano, 2026. All rights reserved.

// Package inspect reads page dimensions back out of finished PDFs so a
// run can be verified against the target geometry.
package inspect

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.yaml.in/yaml/v3"
)

// PageDims is the media box size of one page, in points.
type PageDims struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FileDims lists the page dimensions of one document.
type FileDims struct {
	Name  string     `yaml:"name"`
	Pages []PageDims `yaml:"pages"`
}

// Conforms reports whether every page matches the wanted size within
// tolerance (in points).
func (f FileDims) Conforms(wantWidth, wantHeight, tolerance float64) bool {
	for _, p := range f.Pages {
		if math.Abs(p.Width-wantWidth) > tolerance || math.Abs(p.Height-wantHeight) > tolerance {
			return false
		}
	}
	return len(f.Pages) > 0
}

// Folder reads the page dimensions of every PDF in dir.
func Folder(dir string) ([]FileDims, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []FileDims
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		fd, err := File(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, fd)
	}
	return files, nil
}

// File reads the page dimensions of a single PDF.
func File(path string) (fd FileDims, err error) {
	// The underlying reader reports some malformed structures by
	// panicking; surface them as an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return FileDims{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fd.Name = filepath.Base(path)
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			return FileDims{}, fmt.Errorf("%s: page %d is missing", path, i)
		}
		box := mediaBox(page.V)
		if box.IsNull() || box.Len() < 4 {
			return FileDims{}, fmt.Errorf("%s: page %d has no media box", path, i)
		}
		fd.Pages = append(fd.Pages, PageDims{
			Width:  box.Index(2).Float64() - box.Index(0).Float64(),
			Height: box.Index(3).Float64() - box.Index(1).Float64(),
		})
	}
	return fd, nil
}

// mediaBox resolves the page's media box, walking up the page tree for
// inherited values.
func mediaBox(v pdf.Value) pdf.Value {
	for !v.IsNull() {
		if box := v.Key("MediaBox"); !box.IsNull() {
			return box
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}
}

// WriteYAML renders the report as YAML.
func WriteYAML(w io.Writer, files []FileDims) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(files); err != nil {
		return err
	}
	return enc.Close()
}
