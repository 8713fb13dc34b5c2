package service

import (
	"errors"
	"fmt"
)

var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	ErrResponseNotFound      = errors.New("response not found")
	ErrQuestionnaireClosed   = errors.New("questionnaire is closed")
	ErrDuplicateSubmission   = errors.New("a response has already been submitted for this questionnaire")
	ErrForbidden             = errors.New("access denied")
)

// ValidationError carries the full field-to-message map from the
// validator so the API layer can return it for display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s) invalid", len(e.Fields))
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
