package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeID trims and upper-cases seat, station and booking ids.
func NormalizeID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeIDs cleans an id list, dropping blanks.
func NormalizeIDs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if id := NormalizeID(s); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// HasDuplicates reports whether any id appears twice (case-insensitive).
func HasDuplicates(ids []string) bool {
	seen := map[string]bool{}
	for _, v := range ids {
		k := NormalizeID(v)
		if k == "" {
			continue
		}
		if seen[k] {
			return true
		}
		seen[k] = true
	}
	return false
}

// SafeFilenamePart strips characters that break Content-Disposition filenames.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
