package catalog

import (
	"fmt"
	"io"
	"strings"
)

// PrintRecords writes one line per record. Each character of outputFlags
// selects a column: n (name), c (client), h (chain), d (date),
// f (findings summary), s (size label), u (document url).
func PrintRecords(w io.Writer, recs []AuditRecord, outputFlags, delimiter string) error {
	for _, r := range recs {
		line, err := createLine(r, outputFlags, delimiter)
		if err != nil {
			return err
		}
		if len(strings.Trim(line, delimiter)) > 0 {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func createLine(r AuditRecord, outputFlags, delimiter string) (string, error) {
	var fields []string
	for _, f := range outputFlags {
		switch f {
		case 'n':
			fields = append(fields, r.Name)
		case 'c':
			fields = append(fields, r.Client)
		case 'h':
			if r.Chain != nil {
				fields = append(fields, r.Chain.Name)
			} else {
				fields = append(fields, "")
			}
		case 'd':
			fields = append(fields, r.Date)
		case 'f':
			fields = append(fields, FindingsSummary(r.Findings))
		case 's':
			fields = append(fields, r.SizeLabel)
		case 'u':
			fields = append(fields, r.DocumentURL)
		default:
			return "", fmt.Errorf("invalid output flag %q", f)
		}
	}
	return strings.Join(fields, delimiter), nil
}

// FindingsSummary renders the positive severity counts, e.g. "1 Critical, 2 High".
func FindingsSummary(f *Findings) string {
	if f == nil {
		return ""
	}
	badges := f.Badges()
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		parts = append(parts, fmt.Sprintf("%d %s", b.Count, b.Severity))
	}
	return strings.Join(parts, ", ")
}
