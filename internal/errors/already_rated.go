package errors

import "net/http"

var ErrAlreadyRated = &Exception{
	Message:    "rating already submitted for this request",
	StatusCode: http.StatusConflict,
}
