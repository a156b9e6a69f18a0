package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	j "github.com/goccy/go-json"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/rdfxsd"
	xsderrors "github.com/jacoelho/rdfxsd/errors"
)

type literalReport struct {
	Input     string   `json:"input" yaml:"input"`
	Type      string   `json:"type" yaml:"type"`
	Valid     bool     `json:"valid" yaml:"valid"`
	Canonical string   `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Diff      string   `json:"diff,omitempty" yaml:"diff,omitempty"`
	Code      string   `json:"code,omitempty" yaml:"code,omitempty"`
	Message   string   `json:"message,omitempty" yaml:"message,omitempty"`
	Expected  []string `json:"expected,omitempty" yaml:"expected,omitempty"`
}

func newLiteralReport(t rdfxsd.Type, input string) literalReport {
	r := literalReport{Input: input, Type: t.String()}
	err := rdfxsd.Check(t, input)
	if err == nil {
		r.Valid = true
		return r
	}
	if violations, ok := xsderrors.AsValidations(err); ok && len(violations) > 0 {
		v := violations[0]
		r.Code = v.Code
		r.Message = v.Message
		r.Expected = v.Expected
		return r
	}
	r.Message = err.Error()
	return r
}

func anyInvalid(reports []literalReport) bool {
	for _, r := range reports {
		if !r.Valid {
			return true
		}
	}
	return false
}

type palette struct {
	valid   func(format string, a ...any) string
	invalid func(format string, a ...any) string
	removed func(format string, a ...any) string
	added   func(format string, a ...any) string
	label   func(format string, a ...any) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{
			valid:   fmt.Sprintf,
			invalid: fmt.Sprintf,
			removed: fmt.Sprintf,
			added:   fmt.Sprintf,
			label:   fmt.Sprintf,
		}
	}
	mk := func(c *color.Color) func(string, ...any) string {
		c.EnableColor()
		return c.SprintfFunc()
	}
	return palette{
		valid:   mk(color.RGB(8, 196, 16)),
		invalid: mk(color.RGB(196, 64, 64)),
		removed: mk(color.RGB(196, 128, 128)),
		added:   mk(color.RGB(88, 158, 86)),
		label:   mk(color.RGB(128, 168, 196)),
	}
}

// renderDiff marks deletions as [-x-] and insertions as {+x+}.
func renderDiff(p palette, from, to string) string {
	diffs := diffpatch.New().DiffMain(from, to, false)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString(p.removed("[-%s-]", d.Text))
		case diffpatch.DiffInsert:
			b.WriteString(p.added("{+%s+}", d.Text))
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func encodeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := j.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not structured", format)
	}
}

func writeCheckReports(w io.Writer, format string, p palette, reports []literalReport) error {
	if format != formatText {
		return encodeStructured(w, format, reports)
	}
	for _, r := range reports {
		var err error
		if r.Valid {
			_, err = fmt.Fprintf(w, "%s %s %q\n", p.valid("%-7s", "valid"), p.label("%-8s", r.Type), r.Input)
		} else {
			_, err = fmt.Fprintf(w, "%s %s %q: %s\n", p.invalid("%-7s", "invalid"), p.label("%-8s", r.Type), r.Input, diagnostic(r))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeCanonReports(w io.Writer, format string, p palette, reports []literalReport) error {
	if format != formatText {
		return encodeStructured(w, format, reports)
	}
	for _, r := range reports {
		var err error
		switch {
		case !r.Valid:
			_, err = fmt.Fprintf(w, "%s %q: %s\n", p.invalid("invalid"), r.Input, diagnostic(r))
		case r.Diff != "":
			_, err = fmt.Fprintln(w, renderDiff(p, r.Input, r.Canonical))
		default:
			_, err = fmt.Fprintln(w, r.Canonical)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func diagnostic(r literalReport) string {
	if r.Code == "" {
		return r.Message
	}
	return fmt.Sprintf("[%s] %s", r.Code, r.Message)
}

// literals returns args, or the lines of in when args is empty.
func literals(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read literals: %w", err)
	}
	return lines, nil
}
