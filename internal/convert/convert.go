// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a directory of image files into a multi-page PDF.
// Files become pages in ascending filename order, one page per image.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cheggaaa/pb/v3"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/dir2pdf/internal/diag"
	"github.com/pdiddy/dir2pdf/internal/imaging"
)

// producer identifies this tool in the document metadata of every PDF it
// writes.
const producer = "dir2pdf"

// Options control a single directory conversion.
type Options struct {
	// Title and Author are stamped into the document metadata when set.
	Title  string
	Author string

	// Append allows writing into an existing PDF; pages are added after
	// the ones already there. Without it the output path must be fresh.
	Append bool

	// Report receives non-fatal warnings. Defaults to a discarding sink.
	Report diag.Reporter

	// Progress, when non-nil, is where a per-image progress bar is
	// rendered. Nil disables progress output.
	Progress io.Writer
}

// Directory converts every file in dirPath, in ascending filename order,
// into pages of a PDF at pdfPath. Images with meaningful transparency are
// flattened to opaque RGB with a warning. Any decode or write failure is
// fatal for the whole directory; there is no partial-success policy.
func Directory(dirPath, pdfPath string, opts Options) error {
	if opts.Report == nil {
		opts.Report = diag.Discard()
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dirPath, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no files in %s", dirPath)
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	// ReadDir already sorts, but page order must not depend on that.
	sort.Strings(names)

	if !opts.Append {
		if _, err := os.Stat(pdfPath); err == nil {
			return fmt.Errorf("%s already exists", pdfPath)
		}
	}

	// Flattened images live in a scratch directory for the duration of
	// the conversion.
	tmpDir, err := os.MkdirTemp("", "dir2pdf-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	var bar *pb.ProgressBar
	if opts.Progress != nil {
		bar = pb.New(len(names)).
			SetTemplateString(`{{ bar . " " "━" "━" " " " "}} {{percent .}} {{etime .}}`).
			SetWriter(opts.Progress).
			Start()
		defer bar.Finish()
	}

	files := make([]string, len(names))
	for i, name := range names {
		path := filepath.Join(dirPath, name)
		resolved, flattened, err := imaging.Normalize(path, tmpDir)
		if err != nil {
			return fmt.Errorf("reading image %s: %w", path, err)
		}
		if flattened {
			opts.Report.Warnf("image '%s' contains transparency; color will be off", path)
		}
		files[i] = resolved
		if bar != nil {
			bar.Increment()
		}
	}

	conf := model.NewDefaultConfiguration()

	// ImportImagesFile appends to pdfPath when it exists and creates it
	// otherwise, which covers both output modes.
	if err := api.ImportImagesFile(files, pdfPath, nil, conf); err != nil {
		return fmt.Errorf("writing %s: %w", pdfPath, err)
	}

	if opts.Title != "" || opts.Author != "" {
		props := map[string]string{}
		if opts.Title != "" {
			props["Title"] = opts.Title
		}
		if opts.Author != "" {
			props["Author"] = opts.Author
		}
		if err := api.AddPropertiesFile(pdfPath, "", props, conf); err != nil {
			return fmt.Errorf("writing metadata to %s: %w", pdfPath, err)
		}
	}

	// Last, after pdfcpu's final serialization.
	if err := stampProducer(pdfPath); err != nil {
		return fmt.Errorf("writing metadata to %s: %w", pdfPath, err)
	}
	return nil
}
