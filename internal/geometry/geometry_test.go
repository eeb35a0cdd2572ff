// Copyright Pablo Medrano, 2026. All rights reserved.

package geometry

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

// writeTestPDF creates a one-page PDF of the given size in points with
// a filled rectangle as content.
func writeTestPDF(t *testing.T, path string, w, h float64) {
	t.Helper()
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.AddPage()
	doc.SetFillColor(200, 10, 10)
	doc.Rect(0, 0, w, h, "F")
	require.NoError(t, doc.OutputFileAndClose(path))
}

// readPageSize returns the media box of the first page of the PDF at
// path, in points.
func readPageSize(t *testing.T, path string) (w, h float64) {
	t.Helper()
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: 100, Ht: 100},
	})
	imp := gofpdi.NewImporter()
	imp.ImportPage(doc, path, 1, "/MediaBox")
	sizes := imp.GetPageSizes()
	box, ok := sizes[1]["/MediaBox"]
	require.True(t, ok, "no media box in %s", path)
	return box["w"], box["h"]
}

func TestCmToPoints(t *testing.T) {
	assert.InDelta(t, 72.0, CmToPoints(2.54), 1e-9)
	assert.InDelta(t, 178.58267716535, ContentWidth, 1e-9)
}

func TestPageTransform(t *testing.T) {
	tr, err := PageTransform(800, 600)
	require.NoError(t, err)

	assert.InDelta(t, ContentWidth/800, tr.ScaleX, 1e-12)
	assert.InDelta(t, ContentHeight/600, tr.ScaleY, 1e-12)
	assert.InDelta(t, Margin, tr.TranslateX, 1e-12)
	assert.InDelta(t, Margin, tr.TranslateY, 1e-12)
	assert.Positive(t, tr.ScaleX)
	assert.Positive(t, tr.ScaleY)

	// Non-uniform scaling for mismatched aspect ratios.
	assert.NotEqual(t, tr.ScaleX, tr.ScaleY)

	for _, dims := range [][2]float64{{0, 600}, {800, 0}, {-1, 600}} {
		_, err := PageTransform(dims[0], dims[1])
		assert.Error(t, err, "dims %v", dims)
	}
}

func TestFileFixedOutputSize(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	writeTestPDF(t, in, 800, 600)

	require.NoError(t, File(in, out))

	w, h := readPageSize(t, out)
	assert.InDelta(t, FinalWidth, w, 0.1)
	assert.InDelta(t, FinalHeight, h, 0.1)

	// Correcting an already-corrected document yields the same final
	// page size again.
	again := filepath.Join(dir, "again.pdf")
	require.NoError(t, File(out, again))
	w, h = readPageSize(t, again)
	assert.InDelta(t, FinalWidth, w, 0.1)
	assert.InDelta(t, FinalHeight, h, 0.1)
}

func TestFileMalformed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.pdf")
	require.NoError(t, os.WriteFile(in, []byte("not a pdf at all"), 0o644))

	err := File(in, filepath.Join(dir, "out.pdf"))
	assert.Error(t, err)
}

func TestFolder(t *testing.T) {
	cfg := types.CorrectConfig{
		InputDir:  t.TempDir(),
		OutputDir: filepath.Join(t.TempDir(), "corrected"),
	}
	writeTestPDF(t, filepath.Join(cfg.InputDir, "a.pdf"), 400, 400)
	writeTestPDF(t, filepath.Join(cfg.InputDir, "b.pdf"), 800, 600)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, "notes.txt"), []byte("x"), 0o644))

	var log bytes.Buffer
	n, err := Folder(cfg, &log)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, name := range []string{"a.pdf", "b.pdf"} {
		w, h := readPageSize(t, filepath.Join(cfg.OutputDir, name))
		assert.InDelta(t, FinalWidth, w, 0.1, name)
		assert.InDelta(t, FinalHeight, h, 0.1, name)
	}
	assert.Contains(t, log.String(), "corrected: a.pdf")
}

// A malformed document aborts the stage; geometry correction has no
// meaningful partial result for it.
func TestFolderAbortsOnMalformed(t *testing.T) {
	cfg := types.CorrectConfig{
		InputDir:  t.TempDir(),
		OutputDir: filepath.Join(t.TempDir(), "corrected"),
	}
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, "bad.pdf"), []byte("junk"), 0o644))

	_, err := Folder(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
