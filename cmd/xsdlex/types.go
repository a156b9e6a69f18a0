package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/jacoelho/rdfxsd"
)

type typeEntry struct {
	Name string `json:"name" yaml:"name"`
	URI  string `json:"uri" yaml:"uri"`
}

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: types takes no arguments", cli.ErrUsage)
	}
	e, err := cfg.env(cc.Out)
	if err != nil {
		return err
	}
	defer e.close()

	return runTypes(e, cc.Out)
}

func runTypes(e *env, w io.Writer) error {
	var entries []typeEntry
	for _, t := range rdfxsd.Types() {
		u, ok := e.registry.URI(t)
		if !ok {
			return fmt.Errorf("no URI for %s", t)
		}
		entries = append(entries, typeEntry{Name: e.registry.Label(t), URI: u.String()})
	}
	if e.settings.Format != formatText {
		return encodeStructured(w, e.settings.Format, entries)
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s %s\n", e.palette.label("%-8s", entry.Name), entry.URI); err != nil {
			return err
		}
	}
	return nil
}
