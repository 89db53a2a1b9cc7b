// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardObserver_DebugWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityDebug, &buf)

	o.LogOperation(StandardObservabilityData{
		Component: "extractor",
		Operation: "extract",
		FilePath:  "report.pdf",
		Success:   true,
		PageCount: 3,
	})

	var data StandardObservabilityData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "extractor", data.Component)
	assert.Equal(t, "extract", data.Operation)
	assert.Equal(t, "report.pdf", data.FilePath)
	assert.Equal(t, 3, data.PageCount)
	assert.True(t, data.Success)
	assert.True(t, strings.HasPrefix(data.RequestID, "req-"))
}

func TestStandardObserver_OffIsSilent(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityOff, &buf)
	o.LogOperation(StandardObservabilityData{Component: "x"})
	assert.Zero(t, buf.Len())
}

func TestStandardObserver_NilWriterTurnsOff(t *testing.T) {
	o := NewStandardObserver(ObservabilityDebug, nil)
	assert.NotPanics(t, func() {
		o.LogOperation(StandardObservabilityData{Component: "x"})
	})
}

func TestDebugObserver_Steps(t *testing.T) {
	var buf bytes.Buffer
	d := NewDebugObserver(&buf)

	done := d.StartStep("extractor", "decode pages", "a.pdf")
	d.LogDetail("extractor", "page 1")
	d.LogMetric("extractor", "pages", 2)
	done(false, "boom")

	out := buf.String()
	assert.Contains(t, out, "extractor: decode pages (a.pdf)")
	assert.Contains(t, out, "  ")
	assert.Contains(t, out, "→ extractor: page 1")
	assert.Contains(t, out, "pages = 2")
	assert.Contains(t, out, "decode pages failed")
}

func TestDebugObserver_NilIsNoop(t *testing.T) {
	var d *DebugObserver
	assert.NotPanics(t, func() {
		done := d.StartStep("c", "s", "f")
		d.LogDetail("c", "d")
		d.LogMetric("c", "m", 1)
		d.Record(StandardObservabilityData{})
		done(true, "")
	})
}
