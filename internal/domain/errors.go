package domain

import "errors"

var (
	// ErrInsufficientPool is returned when the card pool cannot fill a batch.
	ErrInsufficientPool = errors.New("card pool smaller than batch size")
	// ErrInvalidSelection is returned when a picked card is not in the offered batch.
	ErrInvalidSelection = errors.New("selected card not in current batch")
	// ErrInvalidAnswer is returned for answer values outside the Likert range.
	ErrInvalidAnswer = errors.New("answer value outside 1..5")
	// ErrQuestionIndex is returned when a question index is past the end of the list.
	ErrQuestionIndex = errors.New("question index out of range")
	// ErrWrongStage is returned when an event does not match the session stage.
	ErrWrongStage = errors.New("operation not allowed in current stage")
	// ErrAssessmentComplete is returned for events against a finished session.
	ErrAssessmentComplete = errors.New("assessment already complete")
	// ErrSessionNotFound is returned when no assessment session exists for a user.
	ErrSessionNotFound = errors.New("assessment session not found")
	// ErrDraftNotFound is returned when a user has no autosaved draft.
	ErrDraftNotFound = errors.New("draft not found")
)
