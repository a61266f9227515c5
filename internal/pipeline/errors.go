package pipeline

// InvalidInputError indicates the session request itself was malformed. It is
// the only error that aborts a generation session before a script is produced.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}
