package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/validation"
)

// handleAgenda lists the todos due on the requested date.
func (s *Server) handleAgenda(c *gin.Context) {
	date, err := validation.CanonicalDate(c.Query("date"))
	if err != nil {
		respondText(c, http.StatusBadRequest, err.Error())
		return
	}

	todos, err := s.store.Agenda(c.Request.Context(), date)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}
