package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// xsdlexMain resolves the shared settings before picking a subcommand, so a bad
// -config file or -format value is reported against xsdlex and its usage, and
// no subcommand runs half configured.
func xsdlexMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	if err := cfg.resolve(); err != nil {
		return err
	}
	newLogger(cc.Err, cfg.Verbose).Debug("settings resolved",
		"command", args[0],
		"namespace", cfg.resolved.Namespace,
		"format", cfg.resolved.Format,
		"color", cfg.resolved.Color)

	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
