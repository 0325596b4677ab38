// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"regexp"
)

// producerEntry locates the Producer string literal in the document's Info
// dict. The character class keeps the match inside one simple literal.
var producerEntry = regexp.MustCompile(`/Producer\s*\(([^()\\]*)\)`)

// stampProducer replaces the Producer string pdfcpu wrote with the fixed
// identifier. pdfcpu overwrites /Producer with its own version string on
// every serialization, so this runs after the final write and patches the
// bytes directly. The literal is rewritten in place at its original length,
// padded with whitespace after the closing parenthesis; changing the file's
// byte offsets would invalidate the cross-reference table.
func stampProducer(pdfPath string) error {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return err
	}

	loc := producerEntry.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("no producer entry found")
	}
	start, end := loc[2], loc[3] // the literal between the parentheses
	if end-start < len(producer) {
		return fmt.Errorf("producer entry too short to hold %q", producer)
	}

	n := copy(data[start:], producer)
	data[start+n] = ')'
	for i := start + n + 1; i <= end; i++ {
		data[i] = ' '
	}

	return os.WriteFile(pdfPath, data, 0o644)
}
