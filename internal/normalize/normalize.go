// Package normalize maps raw provider records into the stable output shapes
// in internal/models. Every function here is pure: no I/O, no clock, no
// shared state. Field-preference chains and derived-value rules live here
// and nowhere else.
package normalize

// firstNonEmpty returns the first non-empty string of the chain. Used for
// provider fields that exist under both a primary and a legacy key.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// nilIfZero treats zero as "no value" and maps it to null.
func nilIfZero(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
