// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdffixture builds small, well-formed PDF files for tests.
package pdffixture

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

// Title is written to the document information dictionary of every fixture
const Title = "Fixture Document"

// Build returns a PDF with one page per entry in pages. Each line of a
// page's text becomes its own Helvetica text run, encoded as
// Windows-1252 (WinAnsiEncoding). An empty entry produces a page without
// a content stream. Build panics on text that Windows-1252 cannot encode.
func Build(pages ...string) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	// 1 catalog, 2 page tree, 3 font, 4 info; pages start at 5.
	kids := make([]string, len(pages))
	next := 5
	for i, text := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", next)
		next++
		if text != "" {
			next++
		}
	}

	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	obj(fmt.Sprintf("<< /Title (%s) /Producer (pdffixture) >>", Title))

	for _, text := range pages {
		page := len(offsets) + 1
		if text == "" {
			obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> >>")
			continue
		}
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", page+1))

		content := textContent(text)
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	// Each entry is exactly 20 bytes including the two-character EOL.
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 4 0 R >>\nstartxref\n%d\n", len(offsets)+1, xref)
	buf.WriteString("%%EOF\n")

	return buf.Bytes()
}

// Write stores a fixture named name in dir and returns its path
func Write(t testing.TB, dir, name string, pages ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(pages...), 0600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// WriteRaw stores arbitrary bytes under name, for files that only look like PDFs
func WriteRaw(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func textContent(text string) string {
	var b strings.Builder
	b.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("0 -14 Td\n")
		}
		fmt.Fprintf(&b, "(%s) Tj\n", winAnsi(escape(line)))
	}
	b.WriteString("ET")
	return b.String()
}

func winAnsi(s string) string {
	encoded, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		panic(fmt.Sprintf("pdffixture: %q is not WinAnsi text: %v", s, err))
	}
	return encoded
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
