// errors/action_errors.go
package errors

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request body")
	ErrUnknownAction     = errors.New("invalid action")
	ErrInvalidActionData = errors.New("invalid action data")
	ErrUserIDRequired    = errors.New("user ID is required")
)

// MutationError reports a failed store mutation for a privileged action.
// Its message is the store's own message.
type MutationError struct {
	Action string
	Err    error
}

func (e *MutationError) Error() string {
	return e.Err.Error()
}

func (e *MutationError) Unwrap() error {
	return e.Err
}
