// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// pdf-read prints the start of the concatenated text of a PDF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"pdf-excerpt/internal/cli"
	"pdf-excerpt/internal/config"
	"pdf-excerpt/internal/docinfo"
	"pdf-excerpt/internal/extractor"
	"pdf-excerpt/internal/help"
	"pdf-excerpt/internal/printer"
	"pdf-excerpt/internal/version"
)

const commandName = "pdf-read"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(commandName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var common cli.CommonFlags
	common.Register(fs)
	chars := fs.Int("chars", 0, "Characters of text to print (default: 2000)")

	fs.Usage = func() {
		help.NewSystem(stderr, true).ShowCommandHelp(commandHelp())
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return cli.ExitError
	}

	noColor := !cli.ColorEnabled(stdout, common.NoColor)
	if common.Help {
		help.NewSystem(stdout, noColor).ShowCommandHelp(commandHelp())
		return 0
	}
	if common.Version {
		fmt.Fprintln(stdout, version.Info(commandName))
		return 0
	}
	if fs.NArg() > 1 {
		cli.PrintError(stderr, fmt.Errorf("expected at most one file, got %d", fs.NArg()))
		return cli.ExitError
	}

	cfg := cli.LoadConfiguration(common.ConfigFile, stderr)
	if common.ListProfiles {
		cli.ShowProfiles(help.NewSystem(stdout, noColor), cfg)
		return 0
	}

	settings, err := cli.Resolve(fs, cfg, &common)
	if err != nil {
		cli.PrintError(stderr, err)
		return cli.ExitError
	}
	if *chars < 0 {
		cli.PrintError(stderr, errors.New("-chars must not be negative"))
		return cli.ExitError
	}
	if *chars > 0 {
		settings.DocumentChars = *chars
	}
	settings.NoColor = settings.NoColor || noColor

	path := settings.DefaultFile
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	if err := read(path, settings, stdout, stderr); err != nil {
		cli.PrintError(stderr, err)
		return cli.ExitError
	}
	return 0
}

func read(path string, s *cli.Settings, stdout, stderr io.Writer) error {
	observer := cli.NewObserver(s.Debug, stderr)

	info := docinfo.NewReader(observer)
	if s.Validate {
		if err := info.Validate(path); err != nil {
			return err
		}
	}

	doc, err := extractor.New(extractor.Options{
		Normalize: s.Normalize,
		Observer:  observer,
	}).ExtractFile(path)
	if err != nil {
		return err
	}

	p := printer.New(stdout, printer.Options{
		DocumentChars: s.DocumentChars,
		NoColor:       s.NoColor,
	})

	if s.ShowInfo {
		meta, err := info.Read(path)
		if err != nil {
			return err
		}
		if err := p.Info(meta); err != nil {
			return err
		}
	}

	return p.Document(doc)
}

func commandHelp() help.Command {
	return help.Command{
		Name:  commandName,
		Title: "pdf-read - print the start of a PDF's text",
		Usage: []string{commandName + " [options] [file]"},
		Description: []string{
			"Extracts the text of every page, joins the pages with newlines and",
			"prints the first characters of the result.",
			fmt.Sprintf("Without a file argument it reads %q.", config.DefaultFile),
		},
		Options: append([]help.Option{
			{Name: "-chars", Arg: "<n>", Description: "Characters of text to print (default: 2000)"},
		}, cli.CommonOptions()...),
		Examples: []string{
			commandName + " report.pdf",
			commandName + " -chars 500 -nfc report.pdf",
		},
	}
}
