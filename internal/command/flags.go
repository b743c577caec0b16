// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "suppress output and only report via the exit status",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print change counts after the diff",
			Value: false,
		},
	}

	return
}

// NewFormatFlag constructs a cli.StringFlag for the "format" flag, optionally
// namespaced to a command and config file. params[1] is the config file. When
// left at "auto" the input format is sniffed from the file extension.
func NewFormatFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "input format. One of auto, json, yaml, hcl",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("STRUCTDIFF_FORMAT"),
		),
		Value: "auto",
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}

	// params[1] is the structdiff config file. It is empty when no config
	// file exists, in which case no file sources are chained.
	if len(params) == 2 && params[1] != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewBandFlag constructs a cli.IntFlag for the alignment band width. Zero
// falls back to the built-in default.
func NewBandFlag(params ...string) (flag *cli.IntFlag) {
	flag = &cli.IntFlag{
		Name:  "band",
		Usage: "max index distance considered when pairing sequence elements",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("STRUCTDIFF_BAND"),
		),
		Value: 0,
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
