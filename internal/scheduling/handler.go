package scheduling

import (
	"errors"
	"net/http"
	"time"

	v1 "github.com/aevon-lab/interval/internal/api/v1"
	httperr "github.com/aevon-lab/interval/internal/core/errors"
	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/aevon-lab/interval/internal/core/schedule"
	"github.com/aevon-lab/interval/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// HandleCreate handles POST /v1/schedules
func (s *Service) HandleCreate(c *gin.Context) {
	var req v1.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON body",
			Details:   err.Error(),
		})
		return
	}

	sch, err := s.Create(c.Request.Context(), req)
	if err != nil {
		writeStoreError(c, err, "Failed to create schedule")
		return
	}
	c.JSON(http.StatusCreated, sch)
}

// HandleList handles GET /v1/schedules
func (s *Service) HandleList(c *gin.Context) {
	list, err := s.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "Failed to list schedules")
		return
	}
	if list == nil {
		list = []*schedule.Schedule{}
	}
	c.JSON(http.StatusOK, v1.ScheduleListResponse{Schedules: list})
}

// HandleGet handles GET /v1/schedules/:name
func (s *Service) HandleGet(c *gin.Context) {
	sch, err := s.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeStoreError(c, err, "Failed to load schedule")
		return
	}
	c.JSON(http.StatusOK, sch)
}

// HandleDelete handles DELETE /v1/schedules/:name
func (s *Service) HandleDelete(c *gin.Context) {
	if err := s.Delete(c.Request.Context(), c.Param("name")); err != nil {
		writeStoreError(c, err, "Failed to delete schedule")
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleOccurrences handles GET /v1/schedules/:name/occurrences
// Query parameters: after (RFC3339, default now), limit (default 10)
func (s *Service) HandleOccurrences(c *gin.Context) {
	var query struct {
		After time.Time `form:"after" time_format:"2006-01-02T15:04:05Z07:00"`
		Limit int       `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	resp, err := s.Occurrences(c.Request.Context(), c.Param("name"), query.After, query.Limit)
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidJsonError,
				Message:   "Invalid occurrence query",
				Details:   err.Error(),
			})
			return
		}
		writeStoreError(c, err, "Failed to expand occurrences")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// writeStoreError maps service and store errors to responses; anything
// unrecognised is a 500 carrying fallback as its message.
func writeStoreError(c *gin.Context, err error, fallback string) {
	var parseErr *interval.ParseError
	switch {
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidIntervalError,
			Message:   parseErr.Error(),
			Details:   map[string]interface{}{"input": parseErr.Input},
		})
	case errors.Is(err, schedule.ErrInvalid):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidScheduleError,
			Message:   err.Error(),
		})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpScheduleNotFoundError,
			Message:   "Schedule not found",
			Details:   map[string]interface{}{"name": c.Param("name")},
		})
	case errors.Is(err, storage.ErrDuplicate):
		c.JSON(http.StatusConflict, httperr.ErrorResponse{
			ErrorType: httperr.HttpDuplicateScheduleError,
			Message:   "Schedule already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   fallback,
			Details:   err.Error(),
		})
	}
}
