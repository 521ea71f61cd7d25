package main

import (
	"github.com/gin-gonic/gin"
)

func registerRoutes(r *gin.Engine, s *ChatServer) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/rpc/login_user", s.HandleLoginUser)
	r.POST("/rpc/register_user", s.HandleRegisterUser)

	r.POST("/rpc/create_room", s.HandleCreateRoom)
	r.POST("/rpc/join_room", s.HandleJoinRoom)
	r.POST("/rpc/leave_room", s.HandleLeaveRoom)
	r.POST("/rpc/list_rooms", s.HandleListRooms)
	r.POST("/rpc/list_users", s.HandleListUsers)
	r.POST("/rpc/is_user_in_room", s.HandleIsUserInRoom)

	r.POST("/rpc/send_message", s.HandleSendMessage)
	r.POST("/rpc/receive_messages", s.HandleReceiveMessages)
}
