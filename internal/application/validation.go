package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks that a string field is non-empty after trimming.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateCardText rejects text that would be empty once trimmed. The store
// declines such cards rather than creating blanks; callers surface the
// message to the user.
func ValidateCardText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{
			Field:   "text",
			Message: "card text is empty",
		}
	}
	return nil
}

// ValidateDirectoryName rejects empty directory labels.
func ValidateDirectoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{
			Field:   "directory",
			Message: "directory name is empty",
		}
	}
	return nil
}
