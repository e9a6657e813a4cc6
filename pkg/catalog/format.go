package catalog

import (
	"fmt"
	"strings"
	"unicode"
)

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// FormatName builds a display title from a listed file name:
// "lemonad-core-security-audit.pdf" becomes "Lemonad Core Security Audit".
// The first character of every run of letters and digits is upper-cased and
// everything else is kept, so "3rd" stays "3rd" and "o'neil" becomes "O'Neil".
func FormatName(fileName, ext string) string {
	name := separatorReplacer.Replace(strings.TrimSuffix(fileName, ext))

	var b strings.Builder
	b.Grow(len(name))
	inWord := false
	for _, r := range name {
		word := isWordRune(r)
		if word && !inWord {
			r = unicode.ToTitle(r)
		}
		inWord = word
		b.WriteRune(r)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FormatSize renders a byte count as B, KB or MB with one decimal.
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
