package errors

import "net/http"

var ErrInvalidState = &Exception{
	Message:    "transition does not match current status",
	StatusCode: http.StatusConflict,
}
