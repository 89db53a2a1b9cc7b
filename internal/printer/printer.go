// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package printer renders extracted PDF text as plain-text excerpts.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pdf-excerpt/internal/docinfo"
	"pdf-excerpt/internal/extractor"
)

// Defaults for the excerpt and whole-document limits
const (
	DefaultPageLimit     = 3
	DefaultExcerptChars  = 1500
	DefaultDocumentChars = 2000
)

// PageSeparator joins page texts in whole-document output
const PageSeparator = "\n"

// Options controls printing limits and colour
type Options struct {
	PageLimit     int // pages excerpted by Analysis
	ExcerptChars  int // characters per page excerpt
	DocumentChars int // characters of whole-document output
	NoColor       bool
}

// Printer writes reports to an io.Writer. The first write error is
// kept and returned by every later call.
type Printer struct {
	w      io.Writer
	opts   Options
	colors map[string]*color.Color
	err    error
}

// New creates a Printer. Zero limits fall back to the defaults.
func New(w io.Writer, opts Options) *Printer {
	if opts.PageLimit <= 0 {
		opts.PageLimit = DefaultPageLimit
	}
	if opts.ExcerptChars <= 0 {
		opts.ExcerptChars = DefaultExcerptChars
	}
	if opts.DocumentChars <= 0 {
		opts.DocumentChars = DefaultDocumentChars
	}

	colors := map[string]*color.Color{
		"title":  color.New(color.FgWhite, color.Bold),
		"header": color.New(color.FgBlue, color.Bold),
		"page":   color.New(color.FgCyan),
		"label":  color.New(color.FgGreen),
	}
	if opts.NoColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	return &Printer{w: w, opts: opts, colors: colors}
}

// Truncate returns at most n characters of s. The cut is on a rune
// boundary and ignores word boundaries.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// JoinPages concatenates page texts with PageSeparator between pages
func JoinPages(texts []string) string {
	return strings.Join(texts, PageSeparator)
}

// Analysis prints the page count and an excerpt of the first pages of doc
func (p *Printer) Analysis(name string, doc *extractor.Document) error {
	p.println("")
	p.colorln("title", "=== Company Analysis ===")
	p.println("")
	p.printf("%s %s\n", p.colors["label"].Sprint("Analyzing PDF:"), name)
	p.println("")
	p.printf("%s %d\n", p.colors["label"].Sprint("Total Pages:"), doc.PageCount)
	p.println("")
	p.colorln("header", "1. Business Model & Company Overview:")

	p.Excerpts(doc)
	return p.err
}

// Excerpts prints a labeled excerpt for each of the first PageLimit pages
// and returns how many were printed
func (p *Printer) Excerpts(doc *extractor.Document) int {
	n := min(p.opts.PageLimit, doc.PageCount, len(doc.Pages))
	for i := 0; i < n; i++ {
		page := doc.Pages[i]
		p.println("")
		p.colorln("page", fmt.Sprintf("--- Content from Page %d ---", page.Number))
		p.println(Truncate(page.Text, p.opts.ExcerptChars))
	}
	return n
}

// Document prints the start of the concatenated text of every page
func (p *Printer) Document(doc *extractor.Document) error {
	p.println(Truncate(JoinPages(doc.Texts()), p.opts.DocumentChars))
	return p.err
}

// Info prints document metadata read by docinfo
func (p *Printer) Info(info *docinfo.Info) error {
	p.colorln("header", "=== Document Info ===")
	rows := []struct{ label, value string }{
		{"File", info.Filename},
		{"Size", fmt.Sprintf("%d bytes", info.FileSize)},
		{"PDF Version", info.Version},
		{"Pages", fmt.Sprintf("%d", info.PageCount)},
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
	}
	if info.Encrypted {
		rows = append(rows, struct{ label, value string }{"Encrypted", "yes"})
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		p.printf("%s %s\n", p.colors["label"].Sprintf("%-12s", row.label+":"), row.value)
	}
	return p.err
}

// Err returns the first write error, if any
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *Printer) colorln(name, s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.colors[name].Fprintln(p.w, s)
}
