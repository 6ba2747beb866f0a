package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// Timeout returns middleware that enforces a request deadline. When the
// deadline passes before the handler finishes, the request is aborted
// with the TIMEOUT envelope. The middleware cannot forcibly stop a
// handler that ignores context cancellation.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})

		go func() {
			c.Next()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				handleTimeout(c, timeout)
			}
		}
	}
}

func handleTimeout(c *gin.Context, timeout time.Duration) {
	traceID := dto.GetTraceID(c)

	logging.FromContext(c.Request.Context()).Warn("request timeout",
		slog.String("path", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
		slog.Duration("timeout", timeout),
		slog.String("trace_id", traceID),
	)

	errResp := dto.NewErrorResponse(
		dto.ErrorCodeTimeout,
		"request timeout exceeded",
	).WithTraceID(traceID)

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(dto.HTTPStatusFromCode(dto.ErrorCodeTimeout), errResp)
	} else {
		c.Abort()
	}
}

// SimpleTimeout returns middleware that only sets the context deadline,
// leaving timeout handling to context-aware handlers. More predictable
// than Timeout for handlers that already do context-aware work, since
// the response is always written from the handler goroutine.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
