package errors

import "net/http"

var ErrRequestNotFound = &Exception{
	Message:    "task request not found",
	StatusCode: http.StatusNotFound,
}
