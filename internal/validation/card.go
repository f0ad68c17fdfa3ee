package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	TitleMinLength = 4
	TitleMaxLength = 100
)

// titlePattern requires an uppercase first letter followed by letters, digits
// or spaces only.
var titlePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9 ]+$`)

var Statuses = []string{"To Do", "In Progress", "Completed", "Testing", "Deployed"}

var Priorities = []string{"Low", "Medium", "High", "Immediate"}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCard checks the supplied card fields and returns every failure
// rather than stopping at the first. A nil pointer means the field was absent
// from the payload and is skipped, so the same function serves both create
// (all fields bound) and partial update. An empty status or priority is
// allowed: it clears an optional field.
func ValidateCard(title, status, priority *string) []FieldError {
	var errs []FieldError

	if title != nil {
		if n := utf8.RuneCountInString(*title); n < TitleMinLength || n > TitleMaxLength {
			errs = append(errs, FieldError{
				Field:   "title",
				Message: fmt.Sprintf("must be between %d and %d characters", TitleMinLength, TitleMaxLength),
			})
		} else if !titlePattern.MatchString(*title) {
			errs = append(errs, FieldError{
				Field:   "title",
				Message: "must start with an uppercase letter and contain only letters, numbers and spaces",
			})
		}
	}

	if status != nil && *status != "" && !contains(Statuses, *status) {
		errs = append(errs, FieldError{
			Field:   "status",
			Message: fmt.Sprintf("must be one of %v", Statuses),
		})
	}

	if priority != nil && *priority != "" && !contains(Priorities, *priority) {
		errs = append(errs, FieldError{
			Field:   "priority",
			Message: fmt.Sprintf("must be one of %v", Priorities),
		})
	}

	return errs
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
