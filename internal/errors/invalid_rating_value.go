package errors

import "net/http"

var ErrInvalidRatingValue = &Exception{
	Message:    "rating value must be between 1 and 5",
	StatusCode: http.StatusBadRequest,
}
