// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package docinfo reads PDF document metadata and validates PDF structure
// with pdfcpu.
package docinfo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdf-excerpt/internal/extractor"
	"pdf-excerpt/internal/observability"
)

const componentName = "docinfo"

// Info is the document-level metadata of a PDF
type Info struct {
	Filename  string
	FileSize  int64
	Version   string
	PageCount int
	Title     string
	Author    string
	Subject   string
	Creator   string
	Producer  string
	Encrypted bool
}

// Reader reads metadata and validates files
type Reader struct {
	pdfConfig *model.Configuration
	observer  *observability.DebugObserver
}

// NewReader creates a Reader. Validation runs in pdfcpu's relaxed mode.
func NewReader(observer *observability.DebugObserver) *Reader {
	pdfConfig := model.NewDefaultConfiguration()
	pdfConfig.ValidationMode = model.ValidationRelaxed

	return &Reader{
		pdfConfig: pdfConfig,
		observer:  observer,
	}
}

// Read returns the metadata of the PDF at path
func (r *Reader) Read(path string) (info *Info, err error) {
	done := r.observer.StartStep(componentName, "read", path)
	defer func() { done(err == nil, errDetail(err)) }()
	defer func() {
		if rec := recover(); rec != nil {
			info = nil
			err = panicError(path, rec)
		}
	}()

	fileInfo, err := stat(path)
	if err != nil {
		return nil, err
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, extractor.NewExtractionError(path, extractor.ErrorTypeMalformed, err)
	}

	info = &Info{
		Filename:  filepath.Base(path),
		FileSize:  fileInfo.Size(),
		Version:   ctx.XRefTable.Version().String(),
		PageCount: ctx.PageCount,
		Title:     ctx.Title,
		Author:    ctx.Author,
		Subject:   ctx.Subject,
		Creator:   ctx.Creator,
		Producer:  ctx.Producer,
		Encrypted: ctx.Encrypt != nil,
	}
	r.observer.LogMetric(componentName, "page_count", info.PageCount)

	return info, nil
}

// Validate checks the structure of the PDF at path
func (r *Reader) Validate(path string) (err error) {
	done := r.observer.StartStep(componentName, "validate", path)
	defer func() { done(err == nil, errDetail(err)) }()
	defer func() {
		if rec := recover(); rec != nil {
			err = panicError(path, rec)
		}
	}()

	if _, err := stat(path); err != nil {
		return err
	}

	if err := api.ValidateFile(path, r.pdfConfig); err != nil {
		return extractor.NewExtractionError(path, extractor.ErrorTypeMalformed, fmt.Errorf("validation failed: %w", err))
	}
	return nil
}

func stat(path string) (os.FileInfo, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, extractor.FileError(path, err)
	}
	if fileInfo.IsDir() {
		return nil, extractor.NewExtractionError(path, extractor.ErrorTypeFileAccess, fmt.Errorf("is a directory"))
	}
	return fileInfo, nil
}

// pdfcpu panics on some truncated or corrupt files.
func panicError(path string, rec interface{}) error {
	return extractor.NewExtractionError(path, extractor.ErrorTypeMalformed, fmt.Errorf("%v", rec))
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
