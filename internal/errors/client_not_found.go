package errors

import "net/http"

var ErrClientNotFound = &Exception{
	Message:    "client not found",
	StatusCode: http.StatusNotFound,
}
