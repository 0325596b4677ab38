// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration structures shared between the CLI and
// the conversion packages.
package types

// Config holds defaults supplied through the config file or environment.
// Command-line flags override every field.
type Config struct {
	// Title is the default document title stamped into output PDFs.
	Title string `mapstructure:"title" yaml:"title"`

	// Author is the default document author stamped into output PDFs.
	Author string `mapstructure:"author" yaml:"author"`

	// Progress enables the conversion progress bar on stderr.
	Progress bool `mapstructure:"progress" yaml:"progress"`
}
