/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/reporter"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/schema"
)

func schemasCmd() *cli.Command {
	return &cli.Command{
		Name:  "schemas",
		Usage: "List the registered table schemas",
		Description: `Lists every table schema the validator knows about. Useful for checking
what file names a delivery directory is expected to contain, and for
inspecting the column contracts of a particular table.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "schemas",
				Usage: "Path to an external schema catalog (YAML); defaults to the built-in catalog",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   "text",
				Usage:   "Output format (text, json, yaml)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			all := make([]*schema.Schema, 0, reg.Len())
			for _, name := range reg.Names() {
				s, _ := reg.Get(name)
				all = append(all, s)
			}

			switch outFormat {
			case reporter.FormatJSON:
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			case reporter.FormatYAML:
				enc := yaml.NewEncoder(os.Stdout)
				defer enc.Close()
				return enc.Encode(all)
			default:
				for _, s := range all {
					fmt.Printf("%s\n", s.Name)
					fmt.Printf("  columns: %s\n", strings.Join(s.Columns, ", "))
					if len(s.Nullable) > 0 {
						fmt.Printf("  nullable: %s\n", strings.Join(s.Nullable, ", "))
					}
					for _, col := range s.Columns {
						if domain, ok := s.Domains[col]; ok {
							fmt.Printf("  domain %s: %s\n", col, strings.Join(domain, " | "))
						}
					}
				}
				return nil
			}
		},
	}
}
