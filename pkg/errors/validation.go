package errors

import "unicode"

// ValidateLabel validates a renderable label.
// Labels are opaque identifiers used as registry keys, so the rules are
// intentionally conservative:
//   - No empty labels
//   - No control characters
//   - Maximum length of 256 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidLabel, "label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidateChartType validates a chart kind identifier (e.g., "LineChart").
// Chart kinds are opaque non-empty strings; the registry namespaces chart
// labels by kind, so an empty kind would collapse namespaces.
func ValidateChartType(chartType string) error {
	if chartType == "" {
		return New(ErrCodeInvalidChartType, "chart type cannot be empty")
	}

	for _, r := range chartType {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidChartType, "chart type contains invalid characters: %q", chartType)
		}
	}

	return nil
}
