package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/services"
)

// response is the envelope every endpoint answers with.
type response struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message,omitempty"`
	Data       interface{}          `json:"data,omitempty"`
	Pagination *services.Pagination `json:"pagination,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, response{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, response{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, data interface{}, pagination *services.Pagination) {
	c.JSON(http.StatusOK, response{Success: true, Data: data, Pagination: pagination})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, response{Success: false, Message: message})
}

// respondErrorDetail additionally surfaces the underlying error text, used by
// the dashboard endpoints the admin panel shows raw errors for.
func respondErrorDetail(c *gin.Context, status int, message string, err error) {
	c.JSON(status, response{Success: false, Message: message, Error: err.Error()})
}

// respondServiceError maps well-known service errors onto HTTP statuses,
// using notFoundMsg for missing records and failMsg for everything else.
func respondServiceError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrMissingFields):
		respondError(c, http.StatusBadRequest, "Please provide all required fields")
	case errors.Is(err, services.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, "Invalid status value")
	case errors.Is(err, services.ErrInvalidFormType):
		respondError(c, http.StatusBadRequest, "Invalid form type")
	default:
		respondError(c, http.StatusInternalServerError, failMsg)
	}
}

// listParams reads the common page/limit/status/search query parameters.
func listParams(c *gin.Context) services.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return services.ListParams{
		Page:   page,
		Limit:  limit,
		Status: c.DefaultQuery("status", "all"),
		Search: c.Query("search"),
	}
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
