package main

import (
	"github.com/gin-gonic/gin"
)

func (r *Registry) HandleRegisterProcedure(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Host string `json:"host" binding:"required"`
		Port int    `json:"port" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	r.Register(req.Name, req.Host, req.Port)
	c.JSON(200, gin.H{"registered": true})
}

func (r *Registry) HandleLookupProcedure(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	record, exists := r.Lookup(req.Name)
	if !exists {
		c.JSON(200, gin.H{"found": false})
		return
	}

	c.JSON(200, gin.H{"found": true, "host": record.Host, "port": record.Port})
}
