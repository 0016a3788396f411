package utils

import "strings"

// NormalizeEmail приводит email к виду, в котором он хранится в базе.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
