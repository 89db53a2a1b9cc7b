// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Option describes one command line option in help output
type Option struct {
	Name        string // e.g. "-dir"
	Arg         string // argument placeholder, empty for boolean flags
	Description string
}

// Command contains the help content for one executable
type Command struct {
	Name        string
	Title       string
	Usage       []string
	Description []string
	Options     []Option
	Examples    []string
}

// System renders help content
type System struct {
	out    io.Writer
	colors map[string]*color.Color
}

// NewSystem creates a new help system writing to out
func NewSystem(out io.Writer, noColor bool) *System {
	colors := map[string]*color.Color{
		"title":   color.New(color.FgWhite, color.Bold),
		"header":  color.New(color.FgBlue, color.Bold),
		"example": color.New(color.FgMagenta),
	}
	if noColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	return &System{
		out:    out,
		colors: colors,
	}
}

// ShowCommandHelp displays the help page for cmd
func (h *System) ShowCommandHelp(cmd Command) {
	h.colors["title"].Fprintln(h.out, cmd.Title)
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "USAGE:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(h.out, "  %s\n", line)
	}
	fmt.Fprintln(h.out)

	if len(cmd.Description) > 0 {
		h.colors["header"].Fprintln(h.out, "DESCRIPTION:")
		for _, line := range cmd.Description {
			fmt.Fprintf(h.out, "  %s\n", line)
		}
		fmt.Fprintln(h.out)
	}

	h.colors["header"].Fprintln(h.out, "OPTIONS:")
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, opt := range cmd.Options {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", opt.Name, opt.Arg, opt.Description)
	}
	w.Flush()

	if len(cmd.Examples) > 0 {
		fmt.Fprintln(h.out)
		h.colors["header"].Fprintln(h.out, "EXAMPLES:")
		for _, ex := range cmd.Examples {
			h.colors["example"].Fprintf(h.out, "  %s\n", ex)
		}
	}
}

// ShowProfiles lists profile names with their descriptions
func (h *System) ShowProfiles(names []string, describe func(name string) string) {
	h.colors["header"].Fprintln(h.out, "PROFILES:")
	if len(names) == 0 {
		fmt.Fprintln(h.out, "  (none)")
		return
	}
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, describe(name))
	}
	w.Flush()
}
