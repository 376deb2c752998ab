package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	nameWidth   = 18
	columnWidth = 14
)

// WriteTo renders the report as text: each dataset with a preview of every
// encoding, then a table of sizes relative to the baseline.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder

	for i, row := range r.Rows {
		fmt.Fprintf(&sb, "Dataset %d: %s (%d numbers)\n", i, row.Spec, row.Count)
		fmt.Fprintf(&sb, "  %-*s %s\n", columnWidth, row.Baseline.Kind.String()+":", r.preview(row.Baseline.Encoded))
		for _, e := range row.Entries {
			fmt.Fprintf(&sb, "  %-*s %s\n", columnWidth, e.Kind.String()+":", r.preview(e.Encoded))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "=== Size relative to %s ===\n\n", r.Baseline)

	header := []string{"Numbers", r.Baseline.String() + " len"}
	for _, k := range r.Codecs {
		header = append(header, k.String())
	}
	for _, ct := range r.Compressors {
		header = append(header, r.Baseline.String()+"+"+ct.String())
	}

	fmt.Fprintf(&sb, "%-*s", nameWidth, "Dataset")
	for _, h := range header {
		fmt.Fprintf(&sb, " | %-*s", columnWidth, h)
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", nameWidth+len(header)*(columnWidth+3)))
	sb.WriteByte('\n')

	for _, row := range r.Rows {
		fmt.Fprintf(&sb, "%-*s", nameWidth, row.Spec)
		fmt.Fprintf(&sb, " | %-*d", columnWidth, row.Count)
		fmt.Fprintf(&sb, " | %-*d", columnWidth, row.Baseline.Length)
		for _, e := range row.Entries {
			fmt.Fprintf(&sb, " | %-*.3f", columnWidth, e.Fraction)
		}
		for i := range row.Compressors {
			fmt.Fprintf(&sb, " | %-*.3f", columnWidth, row.CompressorFraction(i))
		}
		sb.WriteByte('\n')
	}

	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}

// preview truncates s to the preview limit, marking the cut with "...".
func (r *Report) preview(s string) string {
	if r.previewLimit <= 0 || utf8.RuneCountInString(s) <= r.previewLimit {
		return s
	}

	runes := []rune(s)

	return string(runes[:r.previewLimit]) + "..."
}
