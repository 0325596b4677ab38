// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"testing"
)

func TestCompilePattern(t *testing.T) {
	re, err := CompilePattern(`ch(\d+)`)
	if err != nil {
		t.Fatalf("CompilePattern() error: %v", err)
	}

	if m := re.FindStringSubmatch("ch12-draft"); m == nil || m[1] != "12" {
		t.Errorf("prefix match = %v, want capture 12", m)
	}
	// The match is anchored at the start of the name.
	if m := re.FindStringSubmatch("old-ch12"); m != nil {
		t.Errorf("mid-name match = %v, want none", m)
	}
}

func TestCompilePattern_Invalid(t *testing.T) {
	if _, err := CompilePattern(`ch(\d`); err == nil {
		t.Fatal("expected error for unbalanced pattern")
	}
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  bool
	}{
		{name: "single placeholder", template: "out-{}.pdf", wantErr: false},
		{name: "missing placeholder", template: "out.pdf", wantErr: true},
		{name: "duplicate placeholder", template: "{}-{}.pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplate(tt.template)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplate(%q) error = %v, wantErr %v", tt.template, err, tt.wantErr)
			}
		})
	}
}

func TestCaptureValue(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		entry    string
		want     string
		wantName bool
	}{
		{
			name:    "named group n wins over positional",
			pattern: `(v)(?P<n>\d+)`,
			entry:   "v42-scans",
			want:    "42",
		},
		{
			name:    "first positional group",
			pattern: `vol(\d+)([a-z]?)`,
			entry:   "vol7b",
			want:    "7",
		},
		{
			name:    "whole match without groups",
			pattern: `[a-z]+\d`,
			entry:   "abc1",
			want:    "abc1",
		},
		{
			name:     "empty group falls back to entry name",
			pattern:  `(x*)ch\d`,
			entry:    "ch1",
			want:     "ch1",
			wantName: true,
		},
		{
			name:     "empty named group falls back to entry name",
			pattern:  `(?P<n>\d*)notes`,
			entry:    "notes",
			want:     "notes",
			wantName: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := CompilePattern(tt.pattern)
			if err != nil {
				t.Fatalf("CompilePattern() error: %v", err)
			}
			m := re.FindStringSubmatch(tt.entry)
			if m == nil {
				t.Fatalf("pattern %q did not match %q", tt.pattern, tt.entry)
			}

			got, usedName := captureValue(re, m, tt.entry)
			if got != tt.want {
				t.Errorf("captureValue() = %q, want %q", got, tt.want)
			}
			if usedName != tt.wantName {
				t.Errorf("usedName = %v, want %v", usedName, tt.wantName)
			}
		})
	}
}
