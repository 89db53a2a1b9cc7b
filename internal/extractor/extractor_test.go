// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-excerpt/internal/observability"
	"pdf-excerpt/internal/pdffixture"
)

func TestExtractFile_PageCountAndOrder(t *testing.T) {
	cases := []struct {
		name  string
		pages []string
	}{
		{"single page", []string{"Hello PDF"}},
		{"three pages", []string{"First page", "Second page", "Third page"}},
		{"five pages", []string{"one", "two", "three", "four", "five"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := pdffixture.Write(t, t.TempDir(), "doc.pdf", tc.pages...)

			doc, err := New(Options{}).ExtractFile(path)
			require.NoError(t, err)

			assert.Equal(t, "doc.pdf", doc.Filename)
			assert.Equal(t, len(tc.pages), doc.PageCount)
			require.Len(t, doc.Pages, len(tc.pages))
			for i, want := range tc.pages {
				assert.Equal(t, i+1, doc.Pages[i].Number)
				assert.Contains(t, doc.Pages[i].Text, want)
			}
		})
	}
}

func TestExtractFile_MultiLineWinAnsiText(t *testing.T) {
	path := pdffixture.Write(t, t.TempDir(), "doc.pdf", "Café crème\nnaïve façade\n© 2024 Zürich")

	doc, err := New(Options{}).ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)

	text := doc.Pages[0].Text
	assert.True(t, utf8.ValidString(text))
	first := strings.Index(text, "Café crème")
	second := strings.Index(text, "naïve façade")
	third := strings.Index(text, "© 2024 Zürich")
	assert.True(t, first >= 0 && first < second && second < third, "lines out of order: %q", text)
}

func TestExtractFile_MaxPagesKeepsTotal(t *testing.T) {
	path := pdffixture.Write(t, t.TempDir(), "doc.pdf", "a", "b", "c", "d")

	doc, err := New(Options{MaxPages: 2}).ExtractFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4, doc.PageCount)
	assert.Len(t, doc.Pages, 2)
}

func TestExtractFile_PageWithoutTextLayer(t *testing.T) {
	path := pdffixture.Write(t, t.TempDir(), "doc.pdf", "before", "", "after")

	doc, err := New(Options{}).ExtractFile(path)
	require.NoError(t, err)

	require.Len(t, doc.Pages, 3)
	assert.Empty(t, doc.Pages[1].Text)
	assert.Contains(t, doc.Pages[2].Text, "after")
}

func TestExtractFile_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := New(Options{}).ExtractFile(missing)
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, IsIOError(err))
	assert.False(t, IsParseError(err))
	assert.Equal(t, "no such file: "+missing, err.Error())
}

func TestExtractFile_Directory(t *testing.T) {
	_, err := New(Options{}).ExtractFile(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileAccess))
}

func TestExtractFile_NotAPDF(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"plain text", "this is not a PDF"},
		{"empty file", ""},
		{"header only", "%PDF-1.4\n"},
		{"truncated", string(pdffixture.Build("cut short")[:60])},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := pdffixture.WriteRaw(t, t.TempDir(), "fake.pdf", tc.content)

			doc, err := New(Options{}).ExtractFile(path)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.True(t, IsParseError(err), "got %v", err)

			var extractionErr *ExtractionError
			require.True(t, errors.As(err, &extractionErr))
			assert.Equal(t, ErrorTypeMalformed, extractionErr.ErrorType)
			assert.True(t, strings.HasPrefix(err.Error(), "malformed PDF document: "))
		})
	}
}

func TestExtract_FromReader(t *testing.T) {
	data := pdffixture.Build("streamed", "pages")

	doc, err := New(Options{Normalize: true}).Extract(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, 2, doc.PageCount)
	assert.Equal(t, []string{doc.Pages[0].Text, doc.Pages[1].Text}, doc.Texts())
	assert.Contains(t, doc.Pages[0].Text, "streamed")
}

func TestExtract_DebugObserver(t *testing.T) {
	var buf bytes.Buffer
	data := pdffixture.Build("observed")

	_, err := New(Options{Observer: observability.NewDebugObserver(&buf)}).Extract(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "extractor: extract (<stream>)")
	assert.Contains(t, out, "page_count = 1")
	assert.Contains(t, out, "extract completed")
	assert.Contains(t, out, `"operation":"extract"`)
	assert.Contains(t, out, `"success":true`)
}

func TestExtract_DebugObserverRecordsFailure(t *testing.T) {
	var buf bytes.Buffer
	data := []byte("not a pdf")

	_, err := New(Options{Observer: observability.NewDebugObserver(&buf)}).Extract(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "extract failed")
	assert.Contains(t, out, `"success":false`)
	assert.Contains(t, out, `"error":"malformed PDF document`)
}

func TestExtractionError_WithPage(t *testing.T) {
	cause := errors.New("bad font")
	err := NewExtractionError("x.pdf", ErrorTypeMalformed, cause).WithPage(2)

	assert.Equal(t, "malformed PDF document: x.pdf: page 2: bad font", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNormalize(t *testing.T) {
	decomposed := "Cafe\u0301 \u1100\u1161"

	assert.Equal(t, decomposed, New(Options{}).normalize(decomposed))
	assert.Equal(t, "Caf\u00e9 \uac00", New(Options{Normalize: true}).normalize(decomposed))
}
