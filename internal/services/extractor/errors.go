package extractor

// ExtractionError is a failure reported by the extraction backend itself,
// as opposed to an internal fault. The message text is what the error
// mapper classifies on.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return e.Message
}

func NewExtractionError(message string) *ExtractionError {
	return &ExtractionError{Message: message}
}
