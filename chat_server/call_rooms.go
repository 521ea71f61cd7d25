package main

import (
	"github.com/gin-gonic/gin"
)

func (s *ChatServer) HandleCreateRoom(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := s.CreateRoom(req.Name); err != nil {
		replyCallError(c, err)
		return
	}

	c.JSON(200, gin.H{"ok": true})
}

func (s *ChatServer) HandleJoinRoom(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Room     string `json:"room" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	snapshot, err := s.JoinRoom(req.Username, req.Room)
	if err != nil {
		replyCallError(c, err)
		return
	}

	c.JSON(200, snapshot)
}

func (s *ChatServer) HandleLeaveRoom(c *gin.Context) {
	var req struct {
		Room     string `json:"room" binding:"required"`
		Username string `json:"username" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := s.LeaveRoom(req.Room, req.Username); err != nil {
		replyCallError(c, err)
		return
	}

	c.JSON(200, gin.H{"ok": true})
}

func (s *ChatServer) HandleListRooms(c *gin.Context) {
	c.JSON(200, gin.H{"rooms": s.ListRooms()})
}

func (s *ChatServer) HandleListUsers(c *gin.Context) {
	var req struct {
		Room string `json:"room" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	users, err := s.ListUsers(req.Room)
	if err != nil {
		replyCallError(c, err)
		return
	}

	c.JSON(200, gin.H{"users": users})
}

func (s *ChatServer) HandleIsUserInRoom(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Room     string `json:"room" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	c.JSON(200, gin.H{"in_room": s.IsUserInRoom(req.Username, req.Room)})
}
