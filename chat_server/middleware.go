package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestLogger tags every call with a request id and logs its outcome.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		start := time.Now()

		c.Next()

		log.Printf("%s %s id=%s status=%d duration=%v",
			c.Request.Method, c.Request.URL.Path, requestID, c.Writer.Status(), time.Since(start))
	}
}
