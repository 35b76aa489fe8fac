package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/response"
)

// HandleError logs the failure with its request id and writes the {message}
// error body. An AppError overrides status with its own code; otherwise the
// caller's status is used. When err is non-nil its text is echoed to the
// client, else the static msg is used.
func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	var appErr *internal.AppError
	if errors.As(err, &appErr) {
		status = appErr.Code
	}
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	body := msg
	if err != nil {
		body = err.Error()
	}
	c.JSON(status, response.New(body))
}
