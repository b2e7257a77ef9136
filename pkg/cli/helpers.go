/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/reporter"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/schema"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (reporter.Format, error) {
	outFormat := reporter.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: text, json, yaml", outFormat)
	}
	return outFormat, nil
}

// loadRegistry builds the schema registry from the --schemas flag, falling
// back to the embedded catalog.
func loadRegistry(cmd *cli.Command) (*schema.Registry, error) {
	if path := cmd.String("schemas"); path != "" {
		return schema.LoadFile(path)
	}
	return schema.DefaultRegistry()
}

// parseYearRange parses an inclusive year range of the form "START-END".
func parseYearRange(s string) (start, end int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: expected format START-END", s)
	}
	start, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: invalid start year", s)
	}
	end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: invalid end year", s)
	}
	if end < start {
		return 0, 0, fmt.Errorf("%q: end year precedes start year", s)
	}
	return start, end, nil
}
