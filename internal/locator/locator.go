// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package locator finds the PDF file to analyze in a directory.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Extension is matched case-sensitively against entry names
const Extension = ".pdf"

// Policy decides what happens when more than one PDF is present
type Policy string

const (
	// PolicyFirst picks the lexicographically first match
	PolicyFirst Policy = "first"
	// PolicyStrict requires exactly one match
	PolicyStrict Policy = "strict"
)

var (
	ErrNoPDF     = errors.New("no " + Extension + " file found")
	ErrAmbiguous = errors.New("more than one " + Extension + " file found")
)

// ParsePolicy converts a config or flag value to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFirst:
		return PolicyFirst, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("invalid selection policy '%s', must be 'first' or 'strict'", s)
	}
}

// Candidates lists the names of PDF files directly inside dir in
// lexicographic order. Directories are skipped.
func Candidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), Extension) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Locate returns the name of the PDF in dir selected by policy
func Locate(dir string, policy Policy) (string, error) {
	names, err := Candidates(dir)
	if err != nil {
		return "", err
	}

	switch {
	case len(names) == 0:
		return "", fmt.Errorf("%w in %s: %w", ErrNoPDF, dir, fs.ErrNotExist)
	case len(names) > 1 && policy == PolicyStrict:
		return "", fmt.Errorf("%w in %s: %s", ErrAmbiguous, dir, strings.Join(names, ", "))
	}
	return names[0], nil
}
