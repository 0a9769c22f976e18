package ui

// ActionableError is an error whose message can be shown to the player.
type ActionableError struct {
	Message string
	Err     error
}

func (e *ActionableError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ActionableError) Unwrap() error {
	return e.Err
}
