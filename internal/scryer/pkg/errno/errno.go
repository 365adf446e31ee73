package errno

import (
	"errors"
)

var (
	ErrFeedbackGiven    = errors.New("feedback already given")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrMissingToolName  = errors.New("tool state item missing tool name")
	ErrMissingTaskName  = errors.New("task state item missing name")
	ErrInvalidStatus    = errors.New("invalid response status")
	ErrEmptyResponseID  = errors.New("response id is empty")
	ErrStreamClosed     = errors.New("event stream closed")
)
