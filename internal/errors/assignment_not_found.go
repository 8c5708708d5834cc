package errors

import "net/http"

var ErrAssignmentNotFound = &Exception{
	Message:    "assignment not found for this request and worker",
	StatusCode: http.StatusNotFound,
}
