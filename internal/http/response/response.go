package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freightdesk/fleetadmin/internal/pkg/ctxutil"
	pkgerrors "github.com/freightdesk/fleetadmin/internal/pkg/errors"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// Success is the envelope for resource endpoints.
type Success struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

func RespondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Success{Status: "success", Message: message, Data: data})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondFailure maps a service error onto the error envelope. Anything that
// is neither an *apierr.Error nor a known sentinel becomes a 500 whose cause
// is logged, not sent.
func RespondFailure(c *gin.Context, log *logger.Logger, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError && log != nil {
		kv := []interface{}{"error", apierr.Cause(err), "path", c.FullPath(), "code", code}
		if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
			kv = append(kv, "trace_id", td.TraceID, "request_id", td.RequestID)
		}
		log.Error("request failed", kv...)
	}
	if ae, ok := apierr.As(err); ok {
		RespondError(c, status, code, ae)
		return
	}
	if status == http.StatusInternalServerError {
		RespondError(c, status, code, errors.New("internal server error"))
		return
	}
	RespondError(c, status, code, err)
}

func statusFor(err error) (int, string) {
	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := ae.Code
		if code == "" {
			code = "internal_error"
		}
		return status, code
	}
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, pkgerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, pkgerrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, pkgerrors.ErrConflict):
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
