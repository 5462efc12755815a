// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// maxListedItems is how many affected paths are printed before summarizing
const maxListedItems = 3

// ConsoleConfirmer asks on a terminal with a [y/N] prompt
type ConsoleConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

var _ types.Confirmer = (*ConsoleConfirmer)(nil)

// NewConsoleConfirmer creates a confirmer on stdin/stdout
func NewConsoleConfirmer() *ConsoleConfirmer {
	return NewConsoleConfirmerWithIO(os.Stdin, os.Stdout)
}

// NewConsoleConfirmerWithIO creates a confirmer on the given streams
func NewConsoleConfirmerWithIO(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints the request and reads one answer line. An empty answer
// or end of input selects the request default.
func (c *ConsoleConfirmer) Confirm(req types.ConfirmationRequest) (bool, error) {
	_, _ = fmt.Fprintln(c.out)
	if req.Title != "" {
		_, _ = fmt.Fprintln(c.out, req.Title)
	}
	if len(req.Items) > 0 {
		if len(req.Items) <= maxListedItems {
			_, _ = fmt.Fprintf(c.out, "└── %s\n", strings.Join(req.Items, ", "))
		} else {
			_, _ = fmt.Fprintf(c.out, "└── %s and %d more\n",
				strings.Join(req.Items[:maxListedItems], ", "), len(req.Items)-maxListedItems)
		}
	}

	marker := "[y/N]"
	if req.Default {
		marker = "[Y/n]"
	}
	prompt := req.Description
	if prompt == "" {
		prompt = "Continue?"
	}
	_, _ = fmt.Fprintf(c.out, "%s %s: ", prompt, marker)

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to read user input")
	}
	if err == io.EOF {
		_, _ = fmt.Fprintln(c.out)
	}

	return parseAnswer(line, req.Default), nil
}

func parseAnswer(line string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AutoConfirmer answers every request with a fixed value, used by --yes
// and by non-interactive runs
type AutoConfirmer struct {
	Answer bool
}

var _ types.Confirmer = AutoConfirmer{}

// Confirm returns the fixed answer
func (a AutoConfirmer) Confirm(types.ConfirmationRequest) (bool, error) {
	return a.Answer, nil
}
