package middleware

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"textconv/src/infra/logger"
)

// maxLoggedBody caps how much of a request or response body goes into a log line.
const maxLoggedBody = 2048

// Logging emits one line per request with status, latency and, for JSON
// traffic, the request and response bodies.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		var reqBodyBytes []byte
		if c.Request.Body != nil && isJSON(c.ContentType()) {
			reqBodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBodyBytes))
		}

		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		api := path
		if query != "" {
			api = api + "?" + query
		}

		respBody := ""
		if isJSON(rec.Header().Get("Content-Type")) {
			respBody = rec.body.String()
		}

		status := c.Writer.Status()
		logLine := fmt.Sprintf("%s | %s | %s %s | %d | %s | request: %s | response: %s |",
			start.Format(time.RFC3339Nano),
			levelString(status),
			c.Request.Method,
			api,
			status,
			time.Since(start),
			truncate(string(reqBodyBytes)),
			truncate(strings.TrimSpace(respBody)),
		)
		if len(c.Errors) > 0 {
			logLine += " errors: " + c.Errors.String()
		}

		reqLog := logger.WithRequestID(log, GetRequestID(c))
		switch {
		case status >= 500:
			reqLog.Error(logLine)
		case status >= 400:
			reqLog.Warn(logLine)
		default:
			reqLog.Info(logLine)
		}
	}
}

// responseCapture captures response body while delegating to original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

// truncate cuts s to at most maxLoggedBody bytes without splitting a rune.
func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	cut := maxLoggedBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "...(truncated)"
}

func levelString(status int) string {
	switch {
	case status >= 500:
		return "ERROR"
	case status >= 400:
		return "WARN"
	default:
		return "INFO"
	}
}
