package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/jacoelho/rdfxsd"
)

type comparison struct {
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
	Order string `json:"order" yaml:"order"`
}

const orderIndeterminate = "indeterminate"

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	e, err := cfg.env(cc.Out)
	if err != nil {
		return err
	}
	defer e.close()

	return runCompare(e, cc.Out, args[0], args[1])
}

func compareLiterals(left, right string) (comparison, error) {
	a, err := rdfxsd.ParseDateTime(left)
	if err != nil {
		return comparison{}, err
	}
	b, err := rdfxsd.ParseDateTime(right)
	if err != nil {
		return comparison{}, err
	}
	c := comparison{Left: a.String(), Right: b.String()}
	order, err := a.Compare(b)
	switch {
	case errors.Is(err, rdfxsd.ErrIndeterminate):
		c.Order = orderIndeterminate
	case err != nil:
		return comparison{}, err
	case order < 0:
		c.Order = "<"
	case order > 0:
		c.Order = ">"
	default:
		c.Order = "="
	}
	return c, nil
}

func runCompare(e *env, w io.Writer, left, right string) error {
	c, err := compareLiterals(left, right)
	if err != nil {
		return err
	}
	if e.settings.Format != formatText {
		return encodeStructured(w, e.settings.Format, c)
	}
	_, err = fmt.Fprintf(w, "%s %s %s\n", c.Left, e.palette.label("%s", c.Order), c.Right)
	return err
}
