package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for the empty string, used for optional JSON fields.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
