package main

import (
	"errors"

	"github.com/gin-gonic/gin"
)

func replyCallError(c *gin.Context, err error) {
	var domain domainError
	if errors.As(err, &domain) {
		c.JSON(400, gin.H{"error": domain.Error()})
		return
	}
	c.JSON(500, gin.H{"error": "Storage error"})
}

func (s *ChatServer) HandleLoginUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := s.LoginUser(req.Username, req.Password); err != nil {
		replyCallError(c, err)
		return
	}

	c.JSON(200, gin.H{"ok": true})
}

func (s *ChatServer) HandleRegisterUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := s.RegisterUser(req.Username, req.Password); err != nil {
		replyCallError(c, err)
		return
	}

	c.JSON(200, gin.H{"ok": true})
}
