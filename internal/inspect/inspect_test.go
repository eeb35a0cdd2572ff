// Copyright Pablo Medrano, 2026. All rights reserved.

package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
)

func writePDF(t *testing.T, path string, w, h float64) {
	t.Helper()
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.AddPage()
	doc.SetFillColor(10, 10, 200)
	doc.Rect(0, 0, w, h, "F")
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatal(err)
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.pdf")
	writePDF(t, path, 190, 261)

	fd, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if len(fd.Pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(fd.Pages))
	}
	if d := fd.Pages[0]; d.Width < 189.9 || d.Width > 190.1 || d.Height < 260.9 || d.Height > 261.1 {
		t.Errorf("dims = %+v, want ~190x261", d)
	}
}

func TestFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.pdf")
	if err := os.WriteFile(path, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := File(path); err == nil {
		t.Error("File(bad) = nil error, want failure")
	}
}

func TestConforms(t *testing.T) {
	fd := FileDims{
		Name:  "a.pdf",
		Pages: []PageDims{{Width: 189.9, Height: 260.8}},
	}
	if !fd.Conforms(190, 261, 0.5) {
		t.Error("within tolerance, want conforming")
	}
	if fd.Conforms(190, 261, 0.01) {
		t.Error("outside tolerance, want non-conforming")
	}
	empty := FileDims{Name: "empty.pdf"}
	if empty.Conforms(190, 261, 0.5) {
		t.Error("document without pages cannot conform")
	}
}

func TestFolderAndYAML(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, filepath.Join(dir, "a.pdf"), 100, 200)
	writePDF(t, filepath.Join(dir, "b.pdf"), 100, 200)
	if err := os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := Folder(dir)
	if err != nil {
		t.Fatalf("Folder: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}

	var buf bytes.Buffer
	if err := WriteYAML(&buf, files); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"a.pdf", "b.pdf", "width:", "height:"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("yaml %q missing %q", out, want)
		}
	}
}
