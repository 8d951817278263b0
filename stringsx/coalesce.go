package stringsx

// Coalesce returns the first non-empty string in order. When every value is
// empty, or no values are given, it returns the empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
