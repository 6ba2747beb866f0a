package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Greeting messages served by the root and API hello endpoints.
const (
	rootGreeting = "Hello from FastAPI Backend!"
	apiGreeting  = "Hello from the backend API!"
)

// HelloHandler serves the static greeting endpoints.
type HelloHandler struct{}

// NewHelloHandler creates a new hello handler.
func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

// Root handles GET /.
func (h *HelloHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootGreeting})
}

// Hello handles GET /api/hello.
func (h *HelloHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": apiGreeting})
}

// RegisterHelloRoutes registers the greeting routes on the engine.
// Both live outside the /api timeout group: they never block.
func (h *HelloHandler) RegisterHelloRoutes(engine *gin.Engine) {
	engine.GET("/", h.Root)
	engine.GET("/api/hello", h.Hello)
}
