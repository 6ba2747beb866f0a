package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// statusProbeTimeout bounds the storage probe so /test stays responsive
// even when the backend hangs.
const statusProbeTimeout = 5 * time.Second

// maxStatusCollections caps how many collection names the diagnostic
// response lists.
const maxStatusCollections = 10

// maxStatusErrorLen caps how much of a probe error the diagnostic
// response exposes.
const maxStatusErrorLen = 50

// StatusHandler serves GET /test, a diagnostic snapshot of the storage
// backend. The endpoint always returns 200: probe failures are folded
// into the response body, never into the status code.
type StatusHandler struct {
	repo       ports.QuoteRepository
	configured bool
}

// NewStatusHandler creates a status handler. configured reports whether
// a storage backend was wired at startup.
func NewStatusHandler(repo ports.QuoteRepository, configured bool) *StatusHandler {
	return &StatusHandler{
		repo:       repo,
		configured: configured,
	}
}

// Status handles GET /test.
func (h *StatusHandler) Status(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.configured {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), statusProbeTimeout)
		defer cancel()

		names, err := h.repo.CollectionNames(ctx)
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncateError(err)
		} else {
			if len(names) > maxStatusCollections {
				names = names[:maxStatusCollections]
			}

			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	} else {
		response["database"] = "⚠️  Available but not initialized"
	}

	response["database_url"] = setMarker(os.Getenv("DATABASE_URL") != "")
	response["database_name"] = setMarker(os.Getenv("DATABASE_NAME") != "")

	c.JSON(http.StatusOK, response)
}

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxStatusErrorLen {
		msg = msg[:maxStatusErrorLen]
	}

	return msg
}

func setMarker(set bool) string {
	if set {
		return "✅ Set"
	}

	return "❌ Not Set"
}
