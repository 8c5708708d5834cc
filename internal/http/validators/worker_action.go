package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-match-system.com/task-match-system/internal/data_models"
)

func ValidateWorkerActionInput(r *dto.WorkerActionInput) error {
	if r.WorkerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "worker_id is required")
	}
	return nil
}

func ValidateRateClientInput(r *dto.RateClientInput) error {
	if r.WorkerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "worker_id is required")
	}
	return nil
}

func ValidateReplaceAvailabilityInput(r *dto.ReplaceAvailabilityInput) error {
	for _, t := range r.Tuples {
		if t.SpecialtyID == "" || t.LocationID == "" || t.TimeSlotID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "every availability tuple needs specialty_id, location_id and time_slot_id")
		}
	}
	return nil
}
