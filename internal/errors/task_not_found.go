package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task definition not found",
	StatusCode: http.StatusNotFound,
}
