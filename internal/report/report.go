// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report holds the fixed company summary printed after an analysis.
// Its content does not depend on the analyzed document.
package report

import "io"

// Text is the complete report, byte for byte
const Text = `
2. Key Information Extracted:
Company: Renaissance Era Group (北京时代复兴投资管理有限公司)
License Numbers: P1016372 (parent), P1062062 (subsidiary)

Core Competencies:
- AI and Machine Learning Technology
- Innovative Pricing Models
- Big Data Analytics
- Professional Trading Systems

Core Values:
- Diligent (勤勉)
- Professional (专业)
- Extreme (极致)
- Robust (稳健)
- Visionary (远见)
- Valuable (价值)
`

// Write emits the report to w
func Write(w io.Writer) error {
	_, err := io.WriteString(w, Text)
	return err
}
