package archive

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// table is a decoded CSV member: a header row plus data rows. Column lookup
// is header-name-based with language-variant aliases, so column order and
// unknown extra columns never matter.
type table struct {
	headers []string
	rows    [][]string
}

// decodeTable parses CSV content with a header row. Rows with a deviant
// field count are kept; lookups past the end of a short row read as empty.
func decodeTable(content []byte) (*table, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(records) == 0 {
		return &table{}, nil
	}

	return &table{headers: records[0], rows: records[1:]}, nil
}

// column returns the index of the first alias matching a header,
// case-insensitively, or -1 when no alias matches.
func (t *table) column(aliases ...string) int {
	for _, alias := range aliases {
		for i, header := range t.headers {
			if strings.EqualFold(strings.TrimSpace(header), alias) {
				return i
			}
		}
	}
	return -1
}

// value reads a cell by column index, tolerating short rows and missing
// columns.
func value(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
