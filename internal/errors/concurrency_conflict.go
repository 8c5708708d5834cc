package errors

import "net/http"

var ErrConcurrencyConflict = &Exception{
	Message:    "concurrent modification detected",
	StatusCode: http.StatusConflict,
}
