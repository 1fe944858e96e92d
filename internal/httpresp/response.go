package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every successful response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func OK[T any](c *gin.Context, message string, data T) {
	c.JSON(http.StatusOK, Envelope[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created[T any](c *gin.Context, message string, data T) {
	c.JSON(http.StatusCreated, Envelope[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List always answers with an array, never null.
func List[T any](c *gin.Context, message string, data []T) {
	if data == nil {
		data = []T{}
	}
	OK(c, message, data)
}

// Empty answers a listing that found nothing. The data field still carries
// an empty array so clients can treat both paths alike.
func Empty[T any](c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope[[]T]{
		Success: false,
		Message: message,
		Data:    []T{},
	})
}
