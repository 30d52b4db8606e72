package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppError is an error with the status and message safe to show to clients.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func badRequest(message string) *AppError {
	return newAppError(http.StatusBadRequest, message, nil)
}

func notFound(message string) *AppError {
	return newAppError(http.StatusNotFound, message, nil)
}

func internalError(err error) *AppError {
	return newAppError(http.StatusInternalServerError, "Internal Server Error", err)
}

// apiResponse is the JSON envelope of every /api and /admin/api answer.
type apiResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondOK(c *gin.Context, code int, message string, data any) {
	c.JSON(code, apiResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(requestIDKey),
	})
}

func respondError(c *gin.Context, code int, message string, detail any) {
	c.JSON(code, apiResponse{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: c.GetString(requestIDKey),
	})
}

// errorHandler renders errors attached with c.Error. Internal details are logged,
// never sent.
func errorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *AppError
		if !errors.As(err, &appErr) {
			appErr = internalError(err)
		}
		if appErr.Code >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.String("path", c.FullPath()),
				zap.Error(err))
		}

		if wantsHTML(c) {
			c.HTML(appErr.Code, "error.html", gin.H{
				"title": http.StatusText(appErr.Code),
				"error": appErr.Message,
			})
			return
		}
		respondError(c, appErr.Code, appErr.Message, nil)
	}
}

func wantsHTML(c *gin.Context) bool {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/admin/api/") {
		return false
	}
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEHTML
}
