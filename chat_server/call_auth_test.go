package main

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoginRegistersUnknownUser(t *testing.T) {
	_, server := newTestServer(t)

	mustRPC(t, server, "login_user", gin.H{"username": "alice", "password": "pw"})

	// Same credentials log in again.
	mustRPC(t, server, "login_user", gin.H{"username": "alice", "password": "pw"})

	status, result := rpc(t, server, "login_user", gin.H{"username": "alice", "password": "other"})
	if status != 400 {
		t.Fatalf("expected wrong password to fail with 400, got %d", status)
	}
	if result["error"] != "Incorrect password." {
		t.Fatalf("unexpected error message: %v", result["error"])
	}
}

func TestRegisterUserRejectsTakenUsername(t *testing.T) {
	_, server := newTestServer(t)

	mustRPC(t, server, "register_user", gin.H{"username": "alice", "password": "pw"})

	status, result := rpc(t, server, "register_user", gin.H{"username": "alice", "password": "pw2"})
	if status != 400 {
		t.Fatalf("expected duplicate registration to fail with 400, got %d", status)
	}
	message, _ := result["error"].(string)
	if !strings.Contains(message, "already taken") {
		t.Fatalf("unexpected error message: %q", message)
	}
}

func TestRestartKeepsUsersAndWipesRooms(t *testing.T) {
	state := newTestState(t)

	if err := state.LoginUser("alice", "pw"); err != nil {
		t.Fatalf("login alice: %v", err)
	}
	if err := state.CreateRoom("lobby"); err != nil {
		t.Fatalf("create lobby: %v", err)
	}
	if _, err := state.JoinRoom("alice", "lobby"); err != nil {
		t.Fatalf("join lobby: %v", err)
	}

	// A restarted server reloads users from the snapshot; rooms are
	// memory-only and gone, but alice's joined-room list still names
	// the wiped room.
	restarted := NewChatServer()
	users, err := loadUsers()
	if err != nil {
		t.Fatalf("load users: %v", err)
	}
	restarted.users = users

	if err := restarted.LoginUser("alice", "pw"); err != nil {
		t.Fatalf("expected alice to survive restart: %v", err)
	}
	if got := restarted.ListRooms(); len(got) != 0 {
		t.Fatalf("expected rooms to be wiped on restart, got %v", got)
	}
	if !equalStrings(users["alice"].Rooms, []string{"lobby"}) {
		t.Fatalf("expected alice's joined rooms to keep the stale entry, got %v", users["alice"].Rooms)
	}
}
