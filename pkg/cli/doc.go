/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the ayecctl tool.
//
// # Overview
//
// ayecctl is the data-quality gate run against AYEC CSV deliveries before
// they are consumed downstream. It validates every recognized table file in a
// directory against the registered table schemas and exits non-zero when any
// validated table fails.
//
// # Commands
//
// validate - Validate a delivery directory:
//
//	ayecctl validate ./data
//	ayecctl validate ./data --sample-size 1000 --format json --output report.json
//	ayecctl validate ./data --fail-on-missing --check-column-order --year-range 2000-2030
//
// schemas - List the registered table schemas:
//
//	ayecctl schemas
//	ayecctl schemas --format yaml
//	ayecctl schemas --schemas ./custom-catalog.yaml
//
// # Global Flags
//
//	--debug      Enable debug logging
//	--log-json   Output logs in JSON format
//	--help, -h   Show command help
//	--version    Show version information
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Every validated table passed
//	1  Invalid directory, no candidate files, or at least one table failed
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/schema - schema catalog and registry
//   - pkg/table - CSV/gzip table loading
//   - pkg/checks - individual validation rules
//   - pkg/validator - per-table check orchestration
//   - pkg/batch - directory-level orchestration and success policy
//   - pkg/reporter - text/JSON/YAML report rendering
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/cli.version=1.0.0'"
package cli
