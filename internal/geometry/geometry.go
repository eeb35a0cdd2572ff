// Copyright Pablo Medrano, 2026. All rights reserved.

// Package geometry implements the third pipeline stage: every page of
// every input PDF is rescaled onto a blank page of fixed final size,
// with the original content fit anisotropically into the target content
// box and offset by a fixed margin.
package geometry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"

	"github.com/pablo-medrano/Tranformacion-de-imagenes-a-pdf/pkg/types"
)

// pointsPerCm converts centimeters to PDF points.
const pointsPerCm = 72.0 / 2.54

// CmToPoints converts a length in centimeters to points.
func CmToPoints(cm float64) float64 {
	return cm * pointsPerCm
}

// Target geometry in centimeters: a 6.3 x 8.8 content box inside a
// 6.7 x 9.2 final page, margined by 0.2 on all sides.
var (
	ContentWidth  = CmToPoints(6.3)
	ContentHeight = CmToPoints(8.8)
	FinalWidth    = CmToPoints(6.7)
	FinalHeight   = CmToPoints(9.2)
	Margin        = CmToPoints(0.2)
)

// Transform is the per-page affine fit: independent scale factors per
// axis followed by the margin translation. Non-uniform scaling is
// expected whenever the source aspect ratio differs from the target.
type Transform struct {
	ScaleX     float64
	ScaleY     float64
	TranslateX float64
	TranslateY float64
}

// PageTransform derives the transform for a page of the given original
// size in points. Both factors are strictly positive; degenerate page
// dimensions are an error.
func PageTransform(origWidth, origHeight float64) (Transform, error) {
	if origWidth <= 0 || origHeight <= 0 {
		return Transform{}, fmt.Errorf("invalid page size %gx%g pt", origWidth, origHeight)
	}
	return Transform{
		ScaleX:     ContentWidth / origWidth,
		ScaleY:     ContentHeight / origHeight,
		TranslateX: Margin,
		TranslateY: Margin,
	}, nil
}

// File rewrites the document at inPath to outPath with every page
// carried onto a blank FinalWidth x FinalHeight page, scaled into the
// content box and offset by the margin. A malformed document is an
// error; this stage has no meaningful partial result.
func File(inPath, outPath string) (err error) {
	// gofpdi reports parse failures by panicking; surface them as an
	// error so the caller can abort the run.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading %s: %v", inPath, r)
		}
	}()

	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: FinalWidth, Ht: FinalHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	imp := gofpdi.NewImporter()

	// Importing the first page loads the document and exposes the
	// per-page media boxes.
	first := imp.ImportPage(doc, inPath, 1, "/MediaBox")
	sizes := imp.GetPageSizes()
	pageCount := len(sizes)

	for pageNo := 1; pageNo <= pageCount; pageNo++ {
		tpl := first
		if pageNo > 1 {
			tpl = imp.ImportPage(doc, inPath, pageNo, "/MediaBox")
		}

		box, ok := sizes[pageNo]["/MediaBox"]
		if !ok {
			return fmt.Errorf("page %d of %s has no media box", pageNo, inPath)
		}
		t, err := PageTransform(box["w"], box["h"])
		if err != nil {
			return fmt.Errorf("page %d of %s: %w", pageNo, inPath, err)
		}

		doc.AddPage()
		imp.UseImportedTemplate(doc, tpl,
			t.TranslateX, t.TranslateY,
			t.ScaleX*box["w"], t.ScaleY*box["h"])
	}

	if doc.Err() {
		return fmt.Errorf("transforming %s: %w", inPath, doc.Error())
	}
	if err := doc.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// Folder corrects every PDF in cfg.InputDir into cfg.OutputDir under
// the same filename. Non-PDF files are filtered by extension; the first
// malformed document aborts the stage. Returns the number of documents
// written.
func Folder(cfg types.CorrectConfig, w io.Writer) (int, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return 0, fmt.Errorf("reading input directory: %w", err)
	}

	processed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		in := filepath.Join(cfg.InputDir, e.Name())
		out := filepath.Join(cfg.OutputDir, e.Name())
		if err := File(in, out); err != nil {
			return processed, err
		}
		fmt.Fprintf(w, "corrected: %s\n", e.Name())
		processed++
	}

	fmt.Fprintf(w, "\nBatch summary: %d corrected\n", processed)
	return processed, nil
}
