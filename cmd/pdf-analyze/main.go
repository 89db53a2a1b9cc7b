// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// pdf-analyze finds the PDF in a directory, prints its page count and an
// excerpt of its first pages, followed by the company summary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pdf-excerpt/internal/cli"
	"pdf-excerpt/internal/docinfo"
	"pdf-excerpt/internal/extractor"
	"pdf-excerpt/internal/help"
	"pdf-excerpt/internal/locator"
	"pdf-excerpt/internal/printer"
	"pdf-excerpt/internal/report"
	"pdf-excerpt/internal/version"
)

const commandName = "pdf-analyze"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(commandName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var common cli.CommonFlags
	common.Register(fs)
	dir := fs.String("dir", ".", "Directory to search for the PDF file")
	strict := fs.Bool("strict", false, "Fail unless exactly one PDF file is present")
	pages := fs.Int("pages", 0, "Number of pages to excerpt (default: 3)")
	chars := fs.Int("chars", 0, "Characters to print per page (default: 1500)")

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
	if fs.NArg() > 0 {
		cli.PrintError(stderr, fmt.Errorf("unexpected argument '%s'; use -dir to choose a directory", fs.Arg(0)))
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
	if cli.IsFlagSet(fs, "dir") {
		settings.Directory = *dir
	}
	if *strict {
		settings.Policy = locator.PolicyStrict
	}
	if *pages < 0 || *chars < 0 {
		cli.PrintError(stderr, errors.New("-pages and -chars must not be negative"))
		return cli.ExitError
	}
	if *pages > 0 {
		settings.ExcerptPages = *pages
	}
	if *chars > 0 {
		settings.ExcerptChars = *chars
	}
	settings.NoColor = settings.NoColor || noColor

	if err := analyze(settings, stdout, stderr); err != nil {
		cli.PrintError(stderr, err)
		return cli.ExitError
	}
	return 0
}

// analyze locates, extracts and prints. Nothing is written to stdout
// until the document has been read successfully.
func analyze(s *cli.Settings, stdout, stderr io.Writer) error {
	observer := cli.NewObserver(s.Debug, stderr)

	name, err := locator.Locate(s.Directory, s.Policy)
	if err != nil {
		return err
	}
	path := filepath.Join(s.Directory, name)
	observer.LogDetail(commandName, "selected "+path)

	info := docinfo.NewReader(observer)
	if s.Validate {
		if err := info.Validate(path); err != nil {
			return err
		}
	}

	ext := extractor.New(extractor.Options{
		MaxPages:  s.ExcerptPages,
		Normalize: s.Normalize,
		Observer:  observer,
	})
	doc, err := ext.ExtractFile(path)
	if err != nil {
		return err
	}

	p := printer.New(stdout, printer.Options{
		PageLimit:    s.ExcerptPages,
		ExcerptChars: s.ExcerptChars,
		NoColor:      s.NoColor,
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

	if err := p.Analysis(name, doc); err != nil {
		return err
	}
	return report.Write(stdout)
}

func commandHelp() help.Command {
	return help.Command{
		Name:  commandName,
		Title: "pdf-analyze - excerpt the PDF in a directory",
		Usage: []string{commandName + " [options]"},
		Description: []string{
			"Finds the .pdf file directly inside the directory (the lexicographically",
			"first one unless -strict is given), prints its page count and the start",
			"of each of its first pages, then the company summary.",
		},
		Options: append([]help.Option{
			{Name: "-dir", Arg: "<path>", Description: "Directory to search (default: current directory)"},
			{Name: "-strict", Description: "Fail unless exactly one PDF file is present"},
			{Name: "-pages", Arg: "<n>", Description: "Number of pages to excerpt (default: 3)"},
			{Name: "-chars", Arg: "<n>", Description: "Characters to print per page (default: 1500)"},
		}, cli.CommonOptions()...),
		Examples: []string{
			commandName,
			commandName + " -dir ./reports -strict",
			commandName + " -pages 5 -chars 400 -info",
		},
	}
}
