/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package reporter

const (
	// FormatText renders the human-readable batch report.
	FormatText Format = "text"

	// FormatJSON renders the run result as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML renders the run result as YAML.
	FormatYAML Format = "yaml"
)

// Format identifies a report output format.
type Format string

// IsUnknown reports whether the format is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	}
	return true
}

// SupportedFormats returns all supported report formats.
func SupportedFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}
