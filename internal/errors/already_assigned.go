package errors

import "net/http"

var ErrAlreadyAssigned = &Exception{
	Message:    "task request already has an assignment",
	StatusCode: http.StatusConflict,
}
