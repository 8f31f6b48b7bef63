// ABOUTME: Output helpers shared by CLI commands.
// ABOUTME: Padding, truncation and weight formatting.
package main

import (
	"fmt"
	"strings"
)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func formatWeight(w *float64) string {
	if w == nil {
		return "bodyweight"
	}
	return fmt.Sprintf("%g", *w)
}
