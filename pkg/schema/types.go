/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package schema

import "fmt"

const (
	// TypeString columns hold free text or categorical labels.
	TypeString ColumnType = "string"

	// TypeInteger columns hold whole numbers. A value such as "3.0" is still
	// considered integer-valued; "3.5" is not.
	TypeInteger ColumnType = "integer"

	// TypeFloat columns hold real numbers.
	TypeFloat ColumnType = "float"
)

// ColumnType identifies the expected type of a column.
type ColumnType string

// ParseColumnType converts a string to a ColumnType. The short aliases used by
// the upstream schema definitions (str, int) are accepted.
func ParseColumnType(s string) (ColumnType, error) {
	switch s {
	case string(TypeString), "str":
		return TypeString, nil
	case string(TypeInteger), "int":
		return TypeInteger, nil
	case string(TypeFloat):
		return TypeFloat, nil
	default:
		return "", fmt.Errorf("unknown column type: %q, supported types: %v", s, SupportedTypes())
	}
}

// IsValid reports whether the column type is one of the supported types.
func (t ColumnType) IsValid() bool {
	switch t {
	case TypeString, TypeInteger, TypeFloat:
		return true
	}
	return false
}

// SupportedTypes returns all supported column types.
func SupportedTypes() []ColumnType {
	return []ColumnType{TypeString, TypeInteger, TypeFloat}
}

// UnmarshalYAML implements yaml.Unmarshaler so catalog files may use either
// the canonical names or the short aliases.
func (t *ColumnType) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseColumnType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
