package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/ctxutil"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

// RequestLogger writes one line per request once the handler chain returns.
// Requests against /api/<resource> carry the resource name and, for item
// routes, the record id so access to one station or lorry can be traced.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if res := routeResource(route); res != "" {
			fields = append(fields, "resource", res)
			if id := c.Param("id"); id != "" {
				fields = append(fields, "record_id", id)
			}
		}
		fields = append(fields, requestFields(c)...)

		switch {
		case status >= 500:
			log.Error("request served", fields...)
		case status >= 400:
			log.Warn("request served", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}

// routeResource returns "stations" for "/api/stations/:id" and "" for routes
// outside /api.
func routeResource(route string) string {
	rest, ok := strings.CutPrefix(route, "/api/")
	if !ok {
		return ""
	}
	res, _, _ := strings.Cut(rest, "/")
	return res
}

func requestFields(c *gin.Context) []interface{} {
	var out []interface{}
	if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
		if td.TraceID != "" {
			out = append(out, "trace_id", td.TraceID)
		}
		if td.RequestID != "" && td.RequestID != td.TraceID {
			out = append(out, "request_id", td.RequestID)
		}
	}
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil && rd.UserID != uuid.Nil {
		scope := "user"
		if rd.Role == types.RoleAdmin {
			scope = "admin"
		}
		out = append(out, "user_id", rd.UserID.String(), "scope", scope)
	}
	return out
}
