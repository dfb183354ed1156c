// Package utils provides shared utility functions used across multiple packages.
package utils

import (
	"strings"
)

// NormalizeStatus maps user-typed status values to their canonical form.
// Accepts various aliases for the well-known statuses:
// - "pending", "todo", "open" -> "Pending"
// - "completed", "complete", "done", "x" -> "Completed"
// Any other non-empty value is returned trimmed, with its first letter upper-cased.
// Returns the normalized status and a boolean indicating if the input was non-empty.
func NormalizeStatus(input string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "pending", "todo", "open":
		return "Pending", true
	case "completed", "complete", "done", "x":
		return "Completed", true
	case "":
		return "", false
	default:
		return capitalize(strings.TrimSpace(input)), true
	}
}

// NormalizePriority maps user-typed priorities to their canonical form.
// - "low", "l", "3" -> "Low"
// - "medium", "med", "m", "2" -> "Medium"
// - "high", "h", "1" -> "High"
// Other non-empty values pass through capitalized.
func NormalizePriority(input string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "low", "l", "3":
		return "Low", true
	case "medium", "med", "m", "2":
		return "Medium", true
	case "high", "h", "1":
		return "High", true
	case "":
		return "", false
	default:
		return capitalize(strings.TrimSpace(input)), true
	}
}

// NormalizeRecurrence lower-cases a recurrence rule and folds common aliases:
// "daily", "day" -> "daily"; "weekly", "week" -> "weekly"; "monthly", "month" -> "monthly";
// "yearly", "year", "annually" -> "yearly". "none" and "" clear the rule.
func NormalizeRecurrence(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "day", "daily":
		return "daily"
	case "week", "weekly":
		return "weekly"
	case "month", "monthly":
		return "monthly"
	case "year", "yearly", "annually":
		return "yearly"
	case "none", "-":
		return ""
	default:
		return s
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
