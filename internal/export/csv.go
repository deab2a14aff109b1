// internal/export/csv.go

// Package export turns the currently loaded rows into downloadable files.
// It operates on whatever page the orchestrator holds; it never fetches.
package export

import (
	"fmt"
	"io"
	"strings"
)

// Column maps one exported field to its header and a value extractor.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// WriteCSV writes rows as RFC 4180 CSV. Every field is wrapped in double
// quotes unconditionally, with embedded quote characters doubled, so values
// containing commas, quotes or newlines survive a round trip.
func WriteCSV[T any](w io.Writer, columns []Column[T], rows []T) error {
	if len(columns) == 0 {
		return fmt.Errorf("csv export requires at least one column")
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := writeRecord(w, headers); err != nil {
		return err
	}

	fields := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			fields[i] = col.Value(row)
		}
		if err := writeRecord(w, fields); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(w io.Writer, fields []string) error {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteString("\r\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write csv record: %w", err)
	}
	return nil
}
