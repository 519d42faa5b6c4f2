package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapi/internal/storage/sqlite"
)

// Server provides HTTP handlers for the todo API.
type Server struct {
	engine *gin.Engine
	store  *sqlite.Store
	logger *slog.Logger
}

// New constructs the HTTP server with routes and middleware configured.
func New(store *sqlite.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/healthz"))

	srv := &Server{
		engine: router,
		store:  store,
		logger: logger,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API handlers together.
func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	todos := s.engine.Group("/todos")
	{
		todos.GET("/", s.validateQuery, s.handleListTodos)
		todos.POST("/", s.validateBody, s.handleCreateTodo)
		todos.GET("/:todoId/", s.handleGetTodo)
		todos.PUT("/:todoId/", s.validateBody, s.handleUpdateTodo)
		todos.DELETE("/:todoId/", s.handleDeleteTodo)
	}

	s.engine.GET("/agenda/", s.validateQuery, s.handleAgenda)

	s.engine.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not Found")
	})
}

// handleHealth reports readiness once the database answers.
func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.respondError(c, http.StatusServiceUnavailable, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID converts a path parameter to int64 with error handling.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return id, true
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	s.logger.Error("request failed",
		slog.String("path", c.FullPath()),
		slog.String("request_id", c.GetString(requestIDKey)),
		slog.String("error", err.Error()),
	)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// respondText sends one of the API's plain-text messages.
func respondText(c *gin.Context, status int, message string) {
	c.String(status, message)
}
