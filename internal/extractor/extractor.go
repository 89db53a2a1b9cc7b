// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor turns a PDF file into ordered per-page text using
// github.com/ledongthuc/pdf.
package extractor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"pdf-excerpt/internal/observability"
)

const componentName = "extractor"

// Page is one page of extracted text
type Page struct {
	Number int // 1-based
	Text   string
}

// Document is the extracted text of a PDF in page order
type Document struct {
	Filename  string
	PageCount int
	Pages     []Page
}

// Texts returns the text of every extracted page in order
func (d *Document) Texts() []string {
	texts := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		texts[i] = p.Text
	}
	return texts
}

// Options controls extraction
type Options struct {
	// MaxPages caps how many pages are decoded. Zero decodes every page.
	// PageCount always reports the document total.
	MaxPages int

	// Normalize applies Unicode NFC to each page's text.
	Normalize bool

	Observer *observability.DebugObserver
}

// Extractor reads PDF documents
type Extractor struct {
	opts Options
}

// New creates an Extractor
func New(opts Options) *Extractor {
	if opts.MaxPages < 0 {
		opts.MaxPages = 0
	}
	return &Extractor{opts: opts}
}

// ExtractFile opens the PDF at path and extracts its text
func (e *Extractor) ExtractFile(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, FileError(path, err)
	}
	if info.IsDir() {
		return nil, NewExtractionError(path, ErrorTypeFileAccess, fmt.Errorf("is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, FileError(path, err)
	}
	defer f.Close()

	return e.extract(path, f, info.Size())
}

// Extract reads a PDF from r, which holds size bytes
func (e *Extractor) Extract(r io.ReaderAt, size int64) (*Document, error) {
	return e.extract("<stream>", r, size)
}

func (e *Extractor) extract(path string, ra io.ReaderAt, size int64) (doc *Document, err error) {
	start := time.Now()
	chars := 0
	done := e.opts.Observer.StartStep(componentName, "extract", path)
	defer func() {
		data := observability.StandardObservabilityData{
			Component:  componentName,
			Operation:  "extract",
			FilePath:   path,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    err == nil,
		}
		if err != nil {
			data.Error = err.Error()
			e.opts.Observer.Record(data)
			done(false, err.Error())
			return
		}
		data.PageCount = doc.PageCount
		data.CharCount = chars
		e.opts.Observer.Record(data)
		done(true, fmt.Sprintf("%d/%d pages", len(doc.Pages), doc.PageCount))
	}()

	// ledongthuc/pdf reports some structural faults by panicking.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = NewExtractionError(path, ErrorTypeMalformed, fmt.Errorf("%v", r))
		}
	}()

	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, NewExtractionError(path, ErrorTypeMalformed, err)
	}

	doc = &Document{
		Filename:  filepath.Base(path),
		PageCount: r.NumPage(),
	}
	e.opts.Observer.LogMetric(componentName, "page_count", doc.PageCount)

	limit := doc.PageCount
	if e.opts.MaxPages > 0 && e.opts.MaxPages < limit {
		limit = e.opts.MaxPages
	}

	doc.Pages = make([]Page, 0, limit)
	for i := 1; i <= limit; i++ {
		text, err := pageText(r.Page(i))
		if err != nil {
			return nil, NewExtractionError(path, ErrorTypeMalformed, err).WithPage(i)
		}
		text = e.normalize(text)
		chars += utf8.RuneCountInString(text)
		doc.Pages = append(doc.Pages, Page{Number: i, Text: text})
		e.opts.Observer.LogDetail(componentName, fmt.Sprintf("page %d: %d bytes", i, len(text)))
	}

	return doc, nil
}

// pageText returns the plain text of p. A missing page or one without a
// content stream has no text layer and yields "".
func pageText(p pdf.Page) (string, error) {
	if p.V.IsNull() || p.V.Key("Contents").IsNull() {
		return "", nil
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range p.Fonts() {
		f := p.Font(name)
		fonts[name] = &f
	}

	text, err := p.GetPlainText(fonts)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(text, "�"), nil
}

func (e *Extractor) normalize(text string) string {
	if !e.opts.Normalize {
		return text
	}
	return norm.NFC.String(text)
}
