package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/jacoelho/rdfxsd"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Type == "" {
		return fmt.Errorf("%w: check requires -type", cli.ErrUsage)
	}
	e, err := cfg.env(cc.Out)
	if err != nil {
		return err
	}
	defer e.close()

	typ, err := e.resolveType(cfg.Type)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	inputs, err := literals(cc.In, args)
	if err != nil {
		return err
	}
	invalid, err := runCheck(e, cc.Out, typ, inputs)
	if err != nil {
		return err
	}
	if invalid {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func runCheck(e *env, w io.Writer, typ rdfxsd.Type, inputs []string) (bool, error) {
	reports := make([]literalReport, 0, len(inputs))
	for _, input := range inputs {
		reports = append(reports, newLiteralReport(typ, input))
	}
	e.logger.Debug("checked literals", "type", typ.String(), "count", len(reports))
	if err := writeCheckReports(w, e.settings.Format, e.palette, reports); err != nil {
		return false, err
	}
	return anyInvalid(reports), nil
}

// resolveType accepts a local name such as "integer" or a full datatype URI.
func (e *env) resolveType(tag string) (rdfxsd.Type, error) {
	if t, err := rdfxsd.ParseType(tag); err == nil {
		return t, nil
	}
	i := strings.LastIndexAny(tag, "#/:")
	if i < 0 || i == len(tag)-1 {
		return rdfxsd.TypeUnknown, fmt.Errorf("unknown datatype %q", tag)
	}
	u, err := e.space.Resolve(tag[:i+1], tag[i+1:])
	if err != nil {
		return rdfxsd.TypeUnknown, fmt.Errorf("datatype %q: %w", tag, err)
	}
	defer e.space.Release(u)
	t := e.registry.TypeOf(u)
	if t == rdfxsd.TypeUnknown {
		return rdfxsd.TypeUnknown, fmt.Errorf("%s is not a datatype in %s", tag, e.settings.Namespace)
	}
	return t, nil
}
