package errors

import "unicode"

// Capacity bounds for the fixed-slot diagram model. A fishbone diagram has
// three slot pairs along the spine (six categories) and a six-entry cause
// offset table per category.
const (
	// MaxCategories is the maximum number of categories a diagram supports.
	MaxCategories = 6

	// MaxCauses is the maximum number of causes a single category supports.
	MaxCauses = 6

	// maxLabelLength caps label text so a single entry cannot blow out the
	// canvas or the SVG output.
	maxLabelLength = 256
)

// ValidateCategoryCount checks that a diagram's category count is within
// the supported 1..6 range.
func ValidateCategoryCount(n int) error {
	if n < 1 || n > MaxCategories {
		return New(ErrCodeInvalidCategoryCount,
			"diagram must have between 1 and %d categories, got %d", MaxCategories, n)
	}
	return nil
}

// ValidateCauseCount checks that a category's cause count fits the fixed
// offset table. Zero causes is valid (the category is drawn bare).
func ValidateCauseCount(category string, n int) error {
	if n < 0 || n > MaxCauses {
		return New(ErrCodeIndexOutOfRange,
			"category %q has %d causes, maximum is %d", category, n, MaxCauses)
	}
	return nil
}

// ValidateLabel validates a category or cause label.
//
// The rules are intentionally conservative:
//   - No empty labels
//   - No control characters
//   - Maximum length of 256 characters
func ValidateLabel(kind, label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "%s label cannot be empty", kind)
	}

	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidLabel, "%s label too long (max %d characters)", kind, maxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "%s label contains control characters", kind)
		}
	}

	return nil
}
