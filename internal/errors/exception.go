package errors

// Exception is the error type shared by every sentinel in this package.
// StatusCode is the HTTP status the API layer maps the error to.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}
