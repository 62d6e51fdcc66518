package rest

import (
	"errors"
	"net/http"

	"finance-tracker/internal/logger"
	"finance-tracker/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor: Unauthorized - 401, Unavailable - 503, все остальное - 400
func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	case services.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// respondError отвечает {"error": msg} со статусом по категории ошибки
func respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	message := err.Error()
	var se *services.Error
	if errors.As(err, &se) {
		message = se.Message
	}

	if kind == services.KindInternal || kind == services.KindUnavailable {
		logger.Log.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
	}

	c.JSON(statusFor(kind), gin.H{"error": message})
}
