package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/observability"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/response"
)

// Recovery converts panics into the standard error envelope. The panic is
// reported asynchronously so a slow error sink cannot stall the response.
func Recovery(reporter observability.Reporter) gin.HandlerFunc {
	if reporter == nil {
		reporter = observability.NewNoopReporter()
	}

	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}

				go reporter.Report(context.WithoutCancel(c.Request.Context()), err, map[string]string{
					"path":       c.FullPath(),
					"method":     c.Request.Method,
					"request_id": c.GetString(RequestIDKey),
				})

				if !c.Writer.Written() {
					response.Error(c, http.StatusInternalServerError, apperror.CodeInternal, "internal server error", nil)
				}
				c.Abort()
			}
		}()

		c.Next()

		// A handler that returned without writing anything would leave
		// the client a bare 200. Turn that into an honest failure.
		if !c.Writer.Written() && c.Writer.Status() == http.StatusOK {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternal, "internal server error", nil)
		}
	}
}
