// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver records one JSON line per completed operation
type StandardObserver struct {
	level  ObservabilityLevel
	writer io.Writer
}

type ObservabilityLevel int

const (
	ObservabilityOff   ObservabilityLevel = 0
	ObservabilityDebug ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	if writer == nil {
		level = ObservabilityOff
	}
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	_ = json.NewEncoder(o.writer).Encode(data)
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component  string `json:"component"`
	Operation  string `json:"operation"`
	RequestID  string `json:"request_id"`
	FilePath   string `json:"file_path,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	PageCount  int    `json:"page_count,omitempty"`
	CharCount  int    `json:"char_count,omitempty"`
}
