package errors

import "net/http"

var ErrLocationNotFound = &Exception{
	Message:    "location not found",
	StatusCode: http.StatusNotFound,
}
