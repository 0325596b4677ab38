// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dispatch scans a base directory for subdirectories matching a
// naming pattern and converts each one into its own PDF. The pattern both
// filters entries and extracts the fragment substituted into the output
// name template.
package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/pdiddy/dir2pdf/internal/convert"
	"github.com/pdiddy/dir2pdf/internal/diag"
)

// Subdirs converts every subdirectory of baseDir whose name matches
// pattern into a PDF at the path formed by filling template's placeholder
// with the capture value. Entries are visited in ascending name order.
// Non-matching entries are skipped; a matching non-directory and, outside
// append mode, an already-existing output are skipped with a warning.
// A conversion failure aborts the remaining entries.
func Subdirs(baseDir, template string, pattern *regexp.Regexp, opts convert.Options) error {
	if opts.Report == nil {
		opts.Report = diag.Discard()
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", baseDir, err)
	}

	names := make([]string, len(entries))
	byName := make(map[string]os.DirEntry, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
		byName[e.Name()] = e
	}
	sort.Strings(names)

	for _, name := range names {
		match := pattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		subdir := filepath.Join(baseDir, name)
		if !byName[name].IsDir() {
			opts.Report.Warnf("matching file %s is not a directory; ignored", subdir)
			continue
		}

		value, usedName := captureValue(pattern, match, name)
		if usedName {
			opts.Report.Warnf("empty capturing group for %s; using name instead", subdir)
		}

		pdfPath := expandTemplate(template, value)

		if !opts.Append {
			if _, err := os.Stat(pdfPath); err == nil {
				opts.Report.Warnf("skipping file %s: file already exists", pdfPath)
				continue
			}
		}

		if err := convert.Directory(subdir, pdfPath, opts); err != nil {
			return err
		}
	}
	return nil
}
