package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-match-system.com/task-match-system/internal/data_models"
)

func ValidateCreateRequestInput(r *dto.CreateRequestInput) error {
	if r.ClientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id is required")
	}
	if r.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}
	if r.LocationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location_id is required")
	}
	if r.TimeSlotID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "time_slot_id is required")
	}
	return nil
}
