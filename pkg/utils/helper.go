package utils

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format the CMS uses for date fields.
const DateLayout = "2006-01-02"

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to float64, falling back to defaultValue on
// empty or malformed input.
func ParseFloat(value string, defaultValue float64) float64 {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return result
}

// StripHTML removes markup from CMS rich text and unescapes entities.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTag.ReplaceAllString(s, "")))
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n < 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Today returns the current date formatted with DateLayout.
func Today(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return now().Format(DateLayout)
}
