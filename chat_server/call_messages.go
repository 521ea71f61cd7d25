package main

import (
	"github.com/gin-gonic/gin"
)

func (s *ChatServer) HandleSendMessage(c *gin.Context) {
	var req struct {
		Username  string `json:"username" binding:"required"`
		Room      string `json:"room" binding:"required"`
		Message   string `json:"message"`
		Recipient string `json:"recipient"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := s.SendMessage(req.Username, req.Room, req.Message, req.Recipient); err != nil {
		replyCallError(c, err)
		return
	}

	c.JSON(200, gin.H{"ok": true})
}

func (s *ChatServer) HandleReceiveMessages(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Room     string `json:"room" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	messages, err := s.ReceiveMessages(req.Username, req.Room)
	if err != nil {
		replyCallError(c, err)
		return
	}

	c.JSON(200, gin.H{"messages": messages})
}
