// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dir2pdf CLI.
//
// Exit codes:
//   - 1 :: Application error
//   - 2 :: Argument error
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dir2pdf/internal/convert"
	"github.com/pdiddy/dir2pdf/internal/diag"
	"github.com/pdiddy/dir2pdf/internal/dispatch"
	"github.com/pdiddy/dir2pdf/pkg/types"
)

const prog = "dir2pdf"

// version is set at build time via ldflags.
var version = "dev"

// argError marks an argument-validation failure, reported with exit code 2.
type argError struct {
	err error
}

func (e *argError) Error() string { return e.err.Error() }
func (e *argError) Unwrap() error { return e.err }

// runStarted distinguishes cobra parse failures from run failures so that
// both kinds of argument error share the same exit code.
var runStarted bool

// rootCmd carries the conversion itself; dir2pdf is a single-operation tool.
var rootCmd = &cobra.Command{
	Use:   "dir2pdf [flags] <pdf> <dir>",
	Short: "Convert images from a directory into a PDF",
	Long: `dir2pdf concatenates the image files of a directory, in ascending filename
order, into one PDF page per image.

If --subdirs is given, a PDF is generated for each subdirectory of <dir>
whose name matches the pattern, and <pdf> is used as a template with {}
replaced per subdirectory. The group named 'n' is used if present, or the
first capturing group otherwise. If the pattern has no capturing groups,
the entire match is used. If that value is empty, the name of the
subdirectory is used instead.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		runStarted = true
		return run(cmd, args[0], args[1])
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dir2pdf.yaml or ~/.config/dir2pdf/config.yaml)")

	rootCmd.Flags().StringP("title", "t", "", "a title for the PDF")
	rootCmd.Flags().String("author", "", "the author of the document")
	rootCmd.Flags().Bool("append", false, "append to the PDF instead of writing")
	rootCmd.Flags().StringP("subdirs", "d", "", "a pattern matching the base name of each subdirectory")
	rootCmd.Flags().Bool("progress", false, "show a progress bar on stderr")

	for _, key := range []string{"title", "author", "progress"} {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(key)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(prog)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", prog))
		}
	}

	viper.SetEnvPrefix("DIR2PDF")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func run(cmd *cobra.Command, pdfPath, dirPath string) error {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing configuration: %w", err)
	}

	appendMode, _ := cmd.Flags().GetBool("append")
	subdirsExpr, _ := cmd.Flags().GetString("subdirs")
	subdirsMode := cmd.Flags().Changed("subdirs")

	// Argument and precondition checks run before any destructive work.
	var pattern *regexp.Regexp
	if subdirsMode {
		var err error
		pattern, err = dispatch.CompilePattern(subdirsExpr)
		if err != nil {
			return &argError{err: err}
		}
		if err := dispatch.ValidateTemplate(pdfPath); err != nil {
			return &argError{err: fmt.Errorf("if --subdirs is given, %w", err)}
		}
	} else if !appendMode {
		if _, err := os.Stat(pdfPath); err == nil {
			return fmt.Errorf("%s already exists", pdfPath)
		}
	}

	info, err := os.Stat(dirPath)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dirPath)
	}
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dirPath, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no files in %s", dirPath)
	}

	opts := convert.Options{
		Title:  cfg.Title,
		Author: cfg.Author,
		Append: appendMode,
		Report: diag.NewStderr(prog),
	}
	if cfg.Progress {
		opts.Progress = os.Stderr
	}

	if !subdirsMode {
		return convert.Directory(dirPath, pdfPath, opts)
	}
	return dispatch.Subdirs(dirPath, pdfPath, pattern, opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", prog, err)

		var aerr *argError
		if !runStarted || errors.As(err, &aerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
