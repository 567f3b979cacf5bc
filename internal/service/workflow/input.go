package workflow

import (
	"strings"

	"github.com/nashirhq/nashir-backend/internal/domain"
)

// CreateTopicInput carries the fields for creating a topic.
type CreateTopicInput struct {
	Title       string
	Description *string
	Source      domain.TopicSource
	Keywords    []string
	Priority    int
}

// Validate checks required fields and defaults the source to manual.
func (in *CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if len(in.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must be at most 500 characters"})
	}

	if in.Source == "" {
		in.Source = domain.TopicSourceManual
	}
	if !in.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "unknown source"})
	}

	if in.Priority < 0 || in.Priority > 100 {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be between 0 and 100"})
	}

	in.Description = trimOrNil(in.Description)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
