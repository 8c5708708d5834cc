package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-match-system.com/task-match-system/internal/data_models"
	apperrors "task-match-system.com/task-match-system/internal/errors"
	"task-match-system.com/task-match-system/internal/http/validators"
	"task-match-system.com/task-match-system/internal/services"
)

type Handler struct {
	matcher      *services.MatcherService
	lifecycle    *services.LifecycleService
	ratings      *services.RatingService
	catalog      *services.CatalogService
	availability *services.AvailabilityService
	workers      *services.WorkerService
}

func NewHandler(
	matcher *services.MatcherService,
	lifecycle *services.LifecycleService,
	ratings *services.RatingService,
	catalog *services.CatalogService,
	availability *services.AvailabilityService,
	workers *services.WorkerService,
) *Handler {
	return &Handler{
		matcher:      matcher,
		lifecycle:    lifecycle,
		ratings:      ratings,
		catalog:      catalog,
		availability: availability,
		workers:      workers,
	}
}

func (h *Handler) CreateRequest(c echo.Context) error {
	var req dto.CreateRequestInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateRequestInput(&req); err != nil {
		return err
	}

	result, err := h.matcher.CreateRequest(
		c.Request().Context(),
		req.ClientID, req.TaskID, req.LocationID, req.TimeSlotID, req.Address,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) TryAssign(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request id is required")
	}

	result, err := h.matcher.TryAssign(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) MarkStarted(c echo.Context) error {
	var req dto.WorkerActionInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateWorkerActionInput(&req); err != nil {
		return err
	}

	assignment, err := h.lifecycle.MarkStarted(c.Request().Context(), c.Param("id"), req.WorkerID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, assignment)
}

func (h *Handler) MarkCompleted(c echo.Context) error {
	var req dto.WorkerActionInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateWorkerActionInput(&req); err != nil {
		return err
	}

	assignment, err := h.lifecycle.MarkCompleted(c.Request().Context(), c.Param("id"), req.WorkerID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, assignment)
}

func (h *Handler) RateWorker(c echo.Context) error {
	var req dto.RateWorkerInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	rating, err := h.ratings.RateWorker(c.Request().Context(), c.Param("id"), req.Value, req.Feedback)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, rating)
}

func (h *Handler) RateClient(c echo.Context) error {
	var req dto.RateClientInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRateClientInput(&req); err != nil {
		return err
	}

	rating, err := h.ratings.RateClient(c.Request().Context(), c.Param("id"), req.WorkerID, req.Value, req.Feedback)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, rating)
}

func (h *Handler) GetRequest(c echo.Context) error {
	detail, err := h.catalog.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListRatings(c echo.Context) error {
	ratings, err := h.ratings.RatingsForRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(ratings),
		"ratings": ratings,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.catalog.SearchTasks(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) ListTimeSlots(c echo.Context) error {
	slots, err := h.catalog.ListTimeSlots(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(slots),
		"slots": slots,
	})
}

func (h *Handler) AvailableTimeSlotsForTask(c echo.Context) error {
	locationID := c.QueryParam("location_id")
	if locationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location_id is required")
	}

	slotIDs, err := h.availability.AvailableTimeSlotsForTask(c.Request().Context(), c.Param("id"), locationID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"time_slot_ids": slotIDs,
	})
}

func (h *Handler) EligibleWorkers(c echo.Context) error {
	specialtyID := c.QueryParam("specialty_id")
	locationID := c.QueryParam("location_id")
	timeSlotID := c.QueryParam("time_slot_id")
	if specialtyID == "" || locationID == "" || timeSlotID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "specialty_id, location_id and time_slot_id are required")
	}

	workerIDs, err := h.availability.FindEligibleWorkers(c.Request().Context(), specialtyID, locationID, timeSlotID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"worker_ids": workerIDs,
	})
}

func (h *Handler) ReplaceAvailability(c echo.Context) error {
	var req dto.ReplaceAvailabilityInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateReplaceAvailabilityInput(&req); err != nil {
		return err
	}

	tuples := make([]services.AvailabilityTuple, 0, len(req.Tuples))
	for _, t := range req.Tuples {
		tuples = append(tuples, services.AvailabilityTuple{
			SpecialtyID: t.SpecialtyID,
			LocationID:  t.LocationID,
			TimeSlotID:  t.TimeSlotID,
		})
	}

	if err := h.workers.ReplaceAvailability(c.Request().Context(), c.Param("id"), tuples); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func httpError(err error) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
