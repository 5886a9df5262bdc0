package output

// Messages renders the localized lines of a run report.
type Messages interface {
	// Message renders id in locale, or the closest supported one. A "Count"
	// entry in data selects the plural form.
	Message(locale, id string, data map[string]any) string
}
