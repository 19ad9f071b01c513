package csvutil

import (
	"strings"
)

// Row is one data line keyed by the lower-cased header fields.
type Row struct {
	// Line is the 1-indexed position in the file, counting the header as
	// line 1. The first data row is therefore line 2.
	Line   int
	Fields map[string]string
}

// Result carries the parsed rows plus the line numbers of rows whose field
// count did not match the header. Such rows are excluded from Rows and are
// not counted toward an import's total; callers decide whether to log them.
type Result struct {
	Header    []string
	Rows      []Row
	Malformed []int
}

// Parse splits delimited text into header-keyed rows. The first non-blank
// line is the header (lower-cased, trimmed, comma-split); blank lines are
// discarded. Field values keep inner whitespace and are trimmed only at the
// edges.
func Parse(text string) Result {
	var result Result

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	line := 0
	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line++

		if result.Header == nil {
			for _, h := range strings.Split(raw, ",") {
				result.Header = append(result.Header, strings.ToLower(strings.TrimSpace(h)))
			}
			continue
		}

		fields := strings.Split(raw, ",")
		if len(fields) != len(result.Header) {
			result.Malformed = append(result.Malformed, line)
			continue
		}

		row := Row{Line: line, Fields: make(map[string]string, len(fields))}
		for i, f := range fields {
			row.Fields[result.Header[i]] = strings.TrimSpace(f)
		}
		result.Rows = append(result.Rows, row)
	}

	return result
}
