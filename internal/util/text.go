package util

import "strings"

// StripQuotes trims single quotes from both ends. Spreadsheet exports prefix
// numeric looking identifiers such as EAN codes and coordinates with one.
func StripQuotes(value string) string {
	return strings.Trim(value, "'")
}

// StripHouseNumberSuffix drops the " ELP" marker that charge point exports
// append to house numbers.
func StripHouseNumberSuffix(value string) string {
	return strings.TrimSpace(strings.TrimSuffix(value, " ELP"))
}

// CleanField trims surrounding whitespace and removes invalid UTF-8 and NUL
// bytes from a raw CSV cell.
func CleanField(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	sanitized = strings.ReplaceAll(sanitized, "\x00", "")
	return strings.TrimSpace(sanitized)
}
