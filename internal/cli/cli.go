// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the flag and configuration handling shared by the
// pdf-analyze and pdf-read commands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"pdf-excerpt/internal/config"
	"pdf-excerpt/internal/help"
	"pdf-excerpt/internal/locator"
	"pdf-excerpt/internal/observability"
)

// ExitError is the process exit code for any reported error
const ExitError = 1

// CommonFlags holds the flags both commands accept
type CommonFlags struct {
	ConfigFile   string
	Profile      string
	ListProfiles bool
	Info         bool
	Validate     bool
	Normalize    bool
	Debug        bool
	NoColor      bool
	Version      bool
	Help         bool
}

// Register binds the common flags to fs
func (f *CommonFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&f.Profile, "profile", "", "Profile name to use from config file")
	fs.BoolVar(&f.ListProfiles, "list-profiles", false, "List available profiles and exit")
	fs.BoolVar(&f.Info, "info", false, "Print document metadata before the text")
	fs.BoolVar(&f.Validate, "validate", false, "Validate the PDF structure before extracting text")
	fs.BoolVar(&f.Normalize, "nfc", false, "Normalize extracted text to Unicode NFC")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging on stderr")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Help, "help", false, "Show help information")
}

// CommonOptions lists the common flags for help output
func CommonOptions() []help.Option {
	return []help.Option{
		{Name: "-config", Arg: "<path>", Description: "Path to configuration file (YAML); none is read unless given"},
		{Name: "-profile", Arg: "<name>", Description: "Profile name to use from config file"},
		{Name: "-list-profiles", Description: "List available profiles and exit"},
		{Name: "-info", Description: "Print document metadata before the text"},
		{Name: "-validate", Description: "Validate the PDF structure before extracting text"},
		{Name: "-nfc", Description: "Normalize extracted text to Unicode NFC"},
		{Name: "-debug", Description: "Enable debug logging on stderr"},
		{Name: "-no-color", Description: "Disable colored output"},
		{Name: "-version", Description: "Show version information"},
		{Name: "-help", Description: "Show this help message"},
	}
}

// Settings holds resolved configuration values
type Settings struct {
	Directory     string
	DefaultFile   string
	Policy        locator.Policy
	ExcerptPages  int
	ExcerptChars  int
	DocumentChars int
	Normalize     bool
	Validate      bool
	ShowInfo      bool
	Debug         bool
	NoColor       bool
}

// LoadConfiguration loads configFile, warning on stderr and using the
// defaults when it cannot be loaded
func LoadConfiguration(configFile string, stderr io.Writer) *config.Config {
	cfg, err := config.LoadConfigOrDefault(configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration\n")
	}
	return cfg
}

// Resolve merges config defaults, the named profile and explicitly set
// common flags, in increasing order of precedence
func Resolve(fs *flag.FlagSet, cfg *config.Config, flags *CommonFlags) (*Settings, error) {
	s := &Settings{
		Directory:     cfg.Defaults.Directory,
		DefaultFile:   cfg.Defaults.DefaultFile,
		ExcerptPages:  cfg.Defaults.ExcerptPages,
		ExcerptChars:  cfg.Defaults.ExcerptChars,
		DocumentChars: cfg.Defaults.DocumentChars,
		Normalize:     cfg.Defaults.Normalize,
		Validate:      cfg.Defaults.Validate,
		ShowInfo:      cfg.Defaults.ShowInfo,
		Debug:         cfg.Defaults.Debug,
		NoColor:       cfg.Defaults.NoColor,
	}
	policy := cfg.Defaults.Policy

	if flags.Profile != "" {
		profile := cfg.GetProfile(flags.Profile)
		if profile == nil {
			return nil, fmt.Errorf("profile '%s' not found", flags.Profile)
		}
		if profile.Policy != "" {
			policy = profile.Policy
		}
		if profile.ExcerptPages > 0 {
			s.ExcerptPages = profile.ExcerptPages
		}
		if profile.ExcerptChars > 0 {
			s.ExcerptChars = profile.ExcerptChars
		}
		if profile.DocumentChars > 0 {
			s.DocumentChars = profile.DocumentChars
		}
		s.Normalize = profile.Normalize
		s.Validate = profile.Validate
		s.ShowInfo = profile.ShowInfo
	}

	var err error
	if s.Policy, err = locator.ParsePolicy(policy); err != nil {
		return nil, err
	}

	if IsFlagSet(fs, "info") {
		s.ShowInfo = flags.Info
	}
	if IsFlagSet(fs, "validate") {
		s.Validate = flags.Validate
	}
	if IsFlagSet(fs, "nfc") {
		s.Normalize = flags.Normalize
	}
	if IsFlagSet(fs, "debug") {
		s.Debug = flags.Debug
	}
	if IsFlagSet(fs, "no-color") {
		s.NoColor = flags.NoColor
	}

	return s, nil
}

// IsFlagSet reports whether name was given on the command line
func IsFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// ColorEnabled reports whether colored output should be written to w
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewObserver returns a debug observer writing to w, or nil when debug
// logging is off
func NewObserver(debug bool, w io.Writer) *observability.DebugObserver {
	if !debug {
		return nil
	}
	return observability.NewDebugObserver(w)
}

// PrintError writes err as a single line
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}

// ShowProfiles prints the profiles known to cfg
func ShowProfiles(h *help.System, cfg *config.Config) {
	h.ShowProfiles(cfg.ListProfiles(), func(name string) string {
		return cfg.GetProfile(name).Description
	})
}
