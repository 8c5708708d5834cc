package errors

import "net/http"

var ErrRequestNotCompleted = &Exception{
	Message:    "task request is not completed yet",
	StatusCode: http.StatusConflict,
}
