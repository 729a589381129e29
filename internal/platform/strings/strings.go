// Package strings holds tiny string and slice helpers shared across the platform
package strings

// IfEmpty returns fallback when v is empty
func IfEmpty[T any](v, fallback []T) []T {
	if len(v) == 0 {
		return fallback
	}
	return v
}

// Coalesce returns the first non-empty string
func Coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
