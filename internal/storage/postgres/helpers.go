package postgres

// derefString safely dereferences a string pointer, returning empty string if nil
func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// nullableString maps "" to NULL so optional text columns stay NULL instead
// of holding empty strings.
func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
