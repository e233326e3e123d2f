package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status values used in acknowledgement bodies.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Resp is the JSON acknowledgement body returned to webhook callers.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK sends 200 with `{"status":"ok"}`, plus optional data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		Status: StatusOK,
		Data:   data,
	})
}

// Error sends 500 with `{"status":"error","message":<msg>}`.
// msg must be a short failure kind, never raw internal error text.
func Error(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Resp{
		Status:  StatusError,
		Message: msg,
	})
}

// BadRequest sends 400 with an error-status body.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Resp{
		Status:  StatusError,
		Message: msg,
	})
}
