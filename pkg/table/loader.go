/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package table

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// gzip member header magic bytes.
var gzipMagic = []byte{0x1f, 0x8b}

// LoadOption configures a Load call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	maxRows int
}

// WithMaxRows caps the number of data rows loaded. The cap is a deterministic
// prefix of the file, so repeated runs sample the same rows. Zero or negative
// means no cap.
func WithMaxRows(n int) LoadOption {
	return func(o *loadOptions) {
		o.maxRows = n
	}
}

// Load reads a delimited file into a Table. Gzip compression is detected from
// the file's leading bytes, never from its extension, so compressed and plain
// deliveries of the same logical content load identically.
func Load(path string, opts ...LoadOption) (*Table, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var src io.Reader = br
	if magic, err := br.Peek(len(gzipMagic)); err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("load %s: opening gzip stream: %w", path, err)
		}
		defer zr.Close()
		src = zr
	}

	r := csv.NewReader(src)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("load %s: file has no header row", path)
		}
		return nil, fmt.Errorf("load %s: reading header: %w", path, err)
	}

	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: name}
	}

	rows := 0
	for o.maxRows <= 0 || rows < o.maxRows {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: reading row %d: %w", path, rows+1, err)
		}
		for i, cell := range rec {
			columns[i].Values = append(columns[i].Values, valueFromCell(cell))
		}
		rows++
	}

	t, err := New(columns)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	slog.Debug("table loaded",
		"path", path,
		"rows", t.NumRows(),
		"columns", t.NumColumns())

	return t, nil
}
