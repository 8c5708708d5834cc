package errors

import "net/http"

var ErrSpecialtyNotFound = &Exception{
	Message:    "specialty not found",
	StatusCode: http.StatusNotFound,
}
