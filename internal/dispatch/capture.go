// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"fmt"
	"regexp"
	"strings"
)

// CompilePattern compiles a naming pattern anchored at the start of the
// entry name. The pattern may match a prefix; it does not have to consume
// the whole name.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + expr + ")")
	if err != nil {
		return nil, fmt.Errorf("invalid subdirectory pattern %q: %w", expr, err)
	}
	return re, nil
}

// placeholder is the substitution marker expected in output templates.
const placeholder = "{}"

// ValidateTemplate checks that template contains exactly one {} placeholder.
func ValidateTemplate(template string) error {
	switch strings.Count(template, placeholder) {
	case 0:
		return fmt.Errorf("output %q must contain the placeholder %s", template, placeholder)
	case 1:
		return nil
	default:
		return fmt.Errorf("output %q must contain exactly one %s placeholder", template, placeholder)
	}
}

// expandTemplate fills the single placeholder in template with value.
func expandTemplate(template, value string) string {
	return strings.Replace(template, placeholder, value, 1)
}

// captureValue resolves the capture value for a matched entry name. The
// rule is evaluated in order: a group named "n", then the first positional
// group, then the whole match. An empty result falls back to the entry
// name itself, reported through usedName so the caller can warn.
func captureValue(re *regexp.Regexp, match []string, name string) (value string, usedName bool) {
	switch {
	case re.SubexpIndex("n") >= 0:
		value = match[re.SubexpIndex("n")]
	case re.NumSubexp() > 0:
		value = match[1]
	default:
		value = match[0]
	}

	if value == "" {
		return name, true
	}
	return value, false
}
