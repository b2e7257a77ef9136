/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/logging"
)

// version is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/cli.version=1.0.0'"
var version = "dev"

// New builds the root command for the ayecctl tool.
func New() *cli.Command {
	return &cli.Command{
		Name:    "ayecctl",
		Usage:   "Data-quality gate for AYEC CSV deliveries",
		Version: version,
		Description: `Validates a directory of CSV table files against the registered table
schemas: required columns, data types, nullability, categorical domains, and
completeness of the file set. Run it before any delivery is consumed
downstream.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			schemasCmd(),
		},
	}
}
