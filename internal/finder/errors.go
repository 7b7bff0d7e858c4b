package finder

// UsageError represents an invalid invocation. It is fatal.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}
