package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "xsdlex").
		WithSynopsis("xsdlex [opts] command [opts]").
		WithDescription("xsdlex checks and canonicalizes XML Schema literals.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xsdlexMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			CanonCommand(cfg),
			CompareCommand(cfg),
			TypesCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check -type <datatype> [literals]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check validates literals against a datatype.

The datatype is an XSD local name (string, boolean, integer, double, float,
decimal, dateTime) or a full datatype URI in the configured namespace.
Literals are taken from the arguments, or one per line from stdin when no
arguments are given. The exit code is 1 if any literal is invalid.

In a -config file a namespace ending in a colon, such as a URN, must be
quoted (namespace: "urn:example:xsd:"); unquoted, YAML reads it as a map.`

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Canon, "canon").
		WithAliases("ca").
		WithSynopsis("canon [-diff] [literals]").
		WithDescription("print the canonical form of xs:dateTime literals").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return canon(cfg, cc, args)
		})
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compare, "compare").
		WithAliases("cmp").
		WithSynopsis("compare <dateTime> <dateTime>").
		WithDescription("order two xs:dateTime literals").
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t").
		WithSynopsis("types").
		WithDescription("list supported datatypes and their URIs").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}
