/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

// Package schema defines the declarative contracts that delivered CSV tables
// must satisfy, and the registry used to look them up by table name.
//
// # Overview
//
// A Schema describes one table: its required columns in canonical order, the
// expected type of each column, the subset of columns allowed to contain
// missing values, and optional categorical domains restricting string columns
// to a finite value set. A Registry is an immutable name-to-schema lookup
// shared by the validator and the batch orchestrator.
//
// # Catalog
//
// The reference catalog of 19 AYEC table schemas is embedded at build time
// (data/schemas-v1.yaml) and exposed through DefaultRegistry. Deployments with
// additional tables can supply their own catalog via LoadFile; the file format
// is the same YAML document:
//
//	schemas:
//	  - name: total_working_population
//	    columns: [ccode, country, year, population]
//	    types:
//	      ccode: string
//	      country: string
//	      year: integer
//	      population: integer
//	    nullable: [population]
//
// # Column Types
//
// Column types form a closed set: string, integer, float. The short aliases
// str and int are accepted when parsing catalogs. "integer" means the values
// are mathematically whole, not that their storage representation is integral:
// 3 and 3.0 both conform, 3.5 does not.
//
// # Invariants
//
// Schema.Validate enforces that every type key, nullable member, and domain
// key refers to a declared column, that every column has a type, and that
// categorical domains are only declared for string columns. NewRegistry
// validates every schema it is given, so an invalid catalog is rejected at
// startup rather than surfacing mid-run.
package schema
