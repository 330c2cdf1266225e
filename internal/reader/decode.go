package reader

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// decodeLines reads the whole stream as Windows-1250 (the codepage the
// observed bank exports use) and splits it into lines.
func decodeLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(transform.NewReader(r, charmap.Windows1250.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decoding windows-1250 stream: %w", err)
	}
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(s, "\n"), nil
}

// utf8BOMArtifact is the byte sequence EF BB BF (a UTF-8 byte-order
// mark) decoded as Windows-1250.
const utf8BOMArtifact = "\u010f\u00bb\u017c"

// stripBOM drops a leading byte-order-mark artifact left by the export.
func stripBOM(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	return strings.TrimPrefix(s, utf8BOMArtifact)
}

// findHeader returns the index of the first line containing any of the
// markers, or -1. Statements may prepend free-text preface lines before
// the actual column header.
func findHeader(lines []string, markers ...string) int {
	for i, line := range lines {
		l := strings.TrimSpace(stripBOM(line))
		for _, m := range markers {
			if strings.Contains(l, m) {
				return i
			}
		}
	}
	return -1
}

// columns maps loose column names to field indexes. Names are compared
// after BOM stripping and trimming so minor header formatting does not
// break extraction; the first occurrence of a name wins.
type columns map[string]int

func indexColumns(header []string) columns {
	cols := make(columns, len(header))
	for i, name := range header {
		name = strings.TrimSpace(stripBOM(name))
		if name == "" {
			continue
		}
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return cols
}

// get returns the trimmed value of the named column, or "" when the
// column is missing from the header or the row is short.
func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
