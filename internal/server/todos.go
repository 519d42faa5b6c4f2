package server

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"todoapi/internal/models"
	"todoapi/internal/storage/sqlite"
)

const (
	msgNotFound     = "Todo Doesn't Exist"
	msgDeleted      = "Todo Deleted"
	msgAdded        = "Todo Successfully Added"
	msgDuplicateID  = "Todo Already Exists"
	msgInvalidInput = "Invalid Todo Payload"
)

var updateMessages = map[models.Field]string{
	models.FieldStatus:   "Status Updated",
	models.FieldPriority: "Priority Updated",
	models.FieldTodo:     "Todo Updated",
	models.FieldCategory: "Category Updated",
	models.FieldDueDate:  "Due Date Updated",
}

// newTodo is a creation request after decoding. All fields are required.
type newTodo struct {
	ID       *int64 `json:"id" validate:"required"`
	Todo     string `json:"todo" validate:"required"`
	Priority string `json:"priority" validate:"required"`
	Status   string `json:"status" validate:"required"`
	Category string `json:"category" validate:"required"`
	DueDate  string `json:"dueDate" validate:"required"`
}

var createValidator = newCreateValidator()

func newCreateValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// handleListTodos returns todos matching the validated query filter.
func (s *Server) handleListTodos(c *gin.Context) {
	todos, err := s.store.ListTodos(c.Request.Context(), filterFrom(c))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// handleGetTodo returns a single todo or the not-found marker.
func (s *Server) handleGetTodo(c *gin.Context) {
	id, ok := parseID(c, "todoId")
	if !ok {
		return
	}

	todo, err := s.store.GetTodo(c.Request.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		respondText(c, http.StatusOK, msgNotFound)
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// handleCreateTodo inserts a todo with a caller supplied id.
func (s *Server) handleCreateTodo(c *gin.Context) {
	req := payloadFrom(c)
	candidate := newTodo{
		ID:       req.ID,
		Todo:     deref(req.Todo),
		Priority: deref(req.Priority),
		Status:   deref(req.Status),
		Category: deref(req.Category),
		DueDate:  deref(req.DueDate),
	}
	if err := createValidator.Struct(candidate); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			respondText(c, http.StatusBadRequest, msgInvalidInput+": "+verrs[0].Field()+" is required")
			return
		}
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	err := s.store.CreateTodo(c.Request.Context(), models.Todo{
		ID:       *candidate.ID,
		Todo:     candidate.Todo,
		Priority: candidate.Priority,
		Status:   candidate.Status,
		Category: candidate.Category,
		DueDate:  candidate.DueDate,
	})
	if errors.Is(err, sqlite.ErrDuplicateID) {
		respondText(c, http.StatusConflict, msgDuplicateID)
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondText(c, http.StatusOK, msgAdded)
}

// handleUpdateTodo merges the body into the stored todo and reports the
// first field that changed.
func (s *Server) handleUpdateTodo(c *gin.Context) {
	id, ok := parseID(c, "todoId")
	if !ok {
		return
	}

	before, after, err := s.store.UpdateTodo(c.Request.Context(), id, payloadFrom(c).patch())
	if errors.Is(err, sqlite.ErrNotFound) {
		respondText(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}

	msg, changed := updateMessages[models.FirstChange(before, after)]
	if !changed {
		c.Status(http.StatusOK)
		return
	}
	respondText(c, http.StatusOK, msg)
}

// handleDeleteTodo removes a todo; the reply is the same whether it existed.
func (s *Server) handleDeleteTodo(c *gin.Context) {
	id, ok := parseID(c, "todoId")
	if !ok {
		return
	}
	if err := s.store.DeleteTodo(c.Request.Context(), id); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondText(c, http.StatusOK, msgDeleted)
}
