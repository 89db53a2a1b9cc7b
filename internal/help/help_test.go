// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	h := NewSystem(&buf, true)

	h.ShowCommandHelp(Command{
		Name:        "pdf-read",
		Title:       "pdf-read - print the start of a PDF's text",
		Usage:       []string{"pdf-read [options] [file]"},
		Description: []string{"Prints the first characters of every page."},
		Options: []Option{
			{Name: "-chars", Arg: "<n>", Description: "Characters to print"},
			{Name: "-debug", Description: "Enable debug logging"},
		},
		Examples: []string{"pdf-read report.pdf"},
	})

	out := buf.String()
	assert.Contains(t, out, "pdf-read - print the start of a PDF's text\n")
	assert.Contains(t, out, "USAGE:\n  pdf-read [options] [file]\n")
	assert.Contains(t, out, "DESCRIPTION:")
	assert.Regexp(t, `-chars\s+<n>\s+Characters to print`, out)
	assert.Contains(t, out, "EXAMPLES:\n  pdf-read report.pdf\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestShowProfiles(t *testing.T) {
	var buf bytes.Buffer
	h := NewSystem(&buf, true)

	h.ShowProfiles([]string{"strict"}, func(string) string { return "one pdf only" })
	assert.Regexp(t, `strict\s+one pdf only`, buf.String())

	buf.Reset()
	h.ShowProfiles(nil, nil)
	assert.Contains(t, buf.String(), "(none)")
}
