package errors

import "net/http"

var ErrTimeSlotNotFound = &Exception{
	Message:    "time slot not found",
	StatusCode: http.StatusNotFound,
}
