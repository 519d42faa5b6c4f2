package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todoapi/internal/models"
	"todoapi/internal/validation"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	filterKey       = "todo_filter"
	payloadKey      = "todo_payload"
)

// todoRequest is the JSON body accepted by POST and PUT. Every field is
// optional at decode time.
type todoRequest struct {
	ID       *int64  `json:"id"`
	Todo     *string `json:"todo"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
	Category *string `json:"category"`
	DueDate  *string `json:"dueDate"`
}

func (r *todoRequest) patch() models.Patch {
	return models.Patch{
		Todo:     r.Todo,
		Priority: r.Priority,
		Status:   r.Status,
		Category: r.Category,
		DueDate:  r.DueDate,
	}
}

// requestID tags every request with an id, reusing the caller's when given.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// validateQuery checks the filter query parameters and stores the
// canonicalized filter for the handler.
func (s *Server) validateQuery(c *gin.Context) {
	fields := validation.Fields{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		DueDate:  c.Query("due_date"),
	}
	if err := validation.Check(&fields); err != nil {
		rejectInvalid(c, err)
		return
	}

	c.Set(filterKey, models.Filter{
		Status:   fields.Status,
		Priority: fields.Priority,
		Category: fields.Category,
		Search:   c.Query("search_q"),
		DueDate:  fields.DueDate,
	})
	c.Next()
}

// validateBody decodes the JSON body, checks its enumerated fields and
// rewrites dueDate to its canonical form.
func (s *Server) validateBody(c *gin.Context) {
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	fields := validation.Fields{
		Status:   deref(req.Status),
		Priority: deref(req.Priority),
		Category: deref(req.Category),
		DueDate:  deref(req.DueDate),
	}
	if err := validation.Check(&fields); err != nil {
		rejectInvalid(c, err)
		return
	}
	if req.DueDate != nil {
		req.DueDate = &fields.DueDate
	}

	c.Set(payloadKey, &req)
	c.Next()
}

func rejectInvalid(c *gin.Context, err error) {
	c.Abort()
	respondText(c, http.StatusBadRequest, err.Error())
}

func filterFrom(c *gin.Context) models.Filter {
	f, _ := c.MustGet(filterKey).(models.Filter)
	return f
}

func payloadFrom(c *gin.Context) *todoRequest {
	req, _ := c.MustGet(payloadKey).(*todoRequest)
	return req
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
