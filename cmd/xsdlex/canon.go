package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/jacoelho/rdfxsd"
)

func canon(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		return err
	}
	e, err := cfg.env(cc.Out)
	if err != nil {
		return err
	}
	defer e.close()

	inputs, err := literals(cc.In, args)
	if err != nil {
		return err
	}
	invalid, err := runCanon(e, cc.Out, inputs, cfg.Diff)
	if err != nil {
		return err
	}
	if invalid {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func runCanon(e *env, w io.Writer, inputs []string, withDiff bool) (bool, error) {
	reports := make([]literalReport, 0, len(inputs))
	for _, input := range inputs {
		canonical, ok := rdfxsd.CanonicalDateTime(input)
		if !ok {
			reports = append(reports, newLiteralReport(rdfxsd.TypeDateTime, input))
			continue
		}
		r := literalReport{
			Input:     input,
			Type:      rdfxsd.TypeDateTime.String(),
			Valid:     true,
			Canonical: canonical,
		}
		if withDiff && canonical != input {
			r.Diff = renderDiff(newPalette(false), input, canonical)
		}
		reports = append(reports, r)
	}
	e.logger.Debug("canonicalized literals", "count", len(reports))
	if err := writeCanonReports(w, e.settings.Format, e.palette, reports); err != nil {
		return false, err
	}
	return anyInvalid(reports), nil
}
