package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"distchat/types"
)

const joinHistoryLimit = 50

// domainError is a per-call failure surfaced to the caller as a plain
// message, as opposed to a storage fault.
type domainError string

func (e domainError) Error() string { return string(e) }

func errRoomNotFound(room string) error {
	return domainError(fmt.Sprintf("The room '%s' does not exist.", room))
}

func errRoomExists(room string) error {
	return domainError(fmt.Sprintf("A room named '%s' already exists.", room))
}

func errUserNotRegistered(username string) error {
	return domainError(fmt.Sprintf("User '%s' is not registered.", username))
}

func errUsernameTaken(username string) error {
	return domainError(fmt.Sprintf("Username '%s' is already taken.", username))
}

var errIncorrectPassword = domainError("Incorrect password.")

type userRecord struct {
	Password string
	Rooms    []string
}

type room struct {
	users      []string
	messages   []types.Message
	lastActive time.Time
}

// ChatServer owns every registered user and every live room. All access
// goes through one coarse lock: mutating calls hold the write lock for
// their full duration, read-only calls hold the read lock, so a read can
// never observe a half-deleted room. Rooms live only in memory; users
// are written through to SQLite on every mutation that touches them.
type ChatServer struct {
	mu    sync.RWMutex
	users map[string]*userRecord
	rooms map[string]*room
	now   func() time.Time
}

func NewChatServer() *ChatServer {
	return &ChatServer{
		users: make(map[string]*userRecord),
		rooms: make(map[string]*room),
		now:   time.Now,
	}
}

// LoginUser logs the user in, registering them first if the username has
// never been seen. Login-or-register: a first login with a new name is
// the registration.
func (s *ChatServer) LoginUser(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		log.Printf("User '%s' not found. Registering...", username)
		return s.registerUserLocked(username, password)
	}

	if user.Password != password {
		return errIncorrectPassword
	}

	log.Printf("User '%s' logged in", username)
	return nil
}

// RegisterUser creates the user outright and fails if the name is taken.
func (s *ChatServer) RegisterUser(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return errUsernameTaken(username)
	}
	return s.registerUserLocked(username, password)
}

func (s *ChatServer) registerUserLocked(username, password string) error {
	user := &userRecord{Password: password}
	s.users[username] = user
	if err := saveUser(username, user); err != nil {
		return err
	}
	log.Printf("User '%s' registered", username)
	return nil
}

func (s *ChatServer) CreateRoom(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[name]; exists {
		return errRoomExists(name)
	}
	s.rooms[name] = &room{lastActive: s.now()}
	// Rooms are memory-only, but creation still rewrites the user
	// snapshot, matching the reaper's post-sweep persist.
	if err := s.saveAllUsersLocked(); err != nil {
		return err
	}
	log.Printf("Room '%s' created", name)
	return nil
}

// JoinRoom adds the user to the room (idempotently), records the room in
// the user's joined set, and returns the member list plus the most
// recent messages as a one-time historical snapshot. This is the only
// call that replays history; receive_messages filters but never pages.
func (s *ChatServer) JoinRoom(username, roomName string) (types.RoomSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, exists := s.rooms[roomName]
	if !exists {
		return types.RoomSnapshot{}, errRoomNotFound(roomName)
	}
	user, exists := s.users[username]
	if !exists {
		return types.RoomSnapshot{}, errUserNotRegistered(username)
	}

	if !contains(rm.users, username) {
		rm.users = append(rm.users, username)
	}
	if !contains(user.Rooms, roomName) {
		user.Rooms = append(user.Rooms, roomName)
		if err := saveUser(username, user); err != nil {
			return types.RoomSnapshot{}, err
		}
	}
	rm.lastActive = s.now()

	history := rm.messages
	if len(history) > joinHistoryLimit {
		history = history[len(history)-joinHistoryLimit:]
	}

	// Non-nil slices so a fresh room encodes as [] on the wire.
	snapshot := types.RoomSnapshot{
		Users:    make([]string, 0, len(rm.users)),
		Messages: make([]types.Message, 0, len(history)),
	}
	snapshot.Users = append(snapshot.Users, rm.users...)
	snapshot.Messages = append(snapshot.Messages, history...)

	log.Printf("User '%s' joined room '%s'", username, roomName)
	return snapshot, nil
}

// LeaveRoom removes the membership on both sides. When the last member
// leaves, lastActive is reset so the inactivity clock counts from the
// moment the room emptied.
func (s *ChatServer) LeaveRoom(roomName, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, exists := s.rooms[roomName]
	if !exists {
		return errRoomNotFound(roomName)
	}
	user, exists := s.users[username]
	if !exists {
		return errUserNotRegistered(username)
	}

	rm.users = remove(rm.users, username)
	if contains(user.Rooms, roomName) {
		user.Rooms = remove(user.Rooms, roomName)
		if err := saveUser(username, user); err != nil {
			return err
		}
	}
	if len(rm.users) == 0 {
		rm.lastActive = s.now()
	}

	log.Printf("User '%s' left room '%s'", username, roomName)
	return nil
}

// SendMessage appends to the room's log. The message is unicast iff
// recipient is non-empty. The recipient is deliberately not checked
// against the member list; whether they are present is the sender's
// courtesy check via is_user_in_room.
func (s *ChatServer) SendMessage(username, roomName, body, recipient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, exists := s.rooms[roomName]
	if !exists {
		return errRoomNotFound(roomName)
	}
	if _, exists := s.users[username]; !exists {
		return errUserNotRegistered(username)
	}

	now := s.now()
	rm.lastActive = now
	msg := types.Message{
		Kind:   types.KindBroadcast,
		From:   username,
		Body:   body,
		SentAt: now.Format("15:04"),
	}
	if recipient != "" {
		msg.Kind = types.KindUnicast
		msg.To = recipient
	}
	rm.messages = append(rm.messages, msg)

	if recipient != "" {
		log.Printf("Private message sent by %s to %s in room '%s'", username, recipient, roomName)
	} else {
		log.Printf("Message sent by %s in room '%s'", username, roomName)
	}
	return nil
}

// ReceiveMessages returns the complete eligible history on every call:
// all broadcasts plus every unicast addressed to username, in append
// order. No server-side cursor exists; callers de-duplicate across
// polls themselves.
func (s *ChatServer) ReceiveMessages(username, roomName string) ([]types.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rm, exists := s.rooms[roomName]
	if !exists {
		return nil, errRoomNotFound(roomName)
	}
	if _, exists := s.users[username]; !exists {
		return nil, errUserNotRegistered(username)
	}

	relevant := make([]types.Message, 0, len(rm.messages))
	for _, msg := range rm.messages {
		if msg.Kind == types.KindBroadcast || msg.To == username {
			relevant = append(relevant, msg)
		}
	}
	return relevant, nil
}

func (s *ChatServer) ListRooms() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.rooms))
	for name := range s.rooms {
		names = append(names, name)
	}
	return names
}

// ListUsers returns the room's members in insertion order.
func (s *ChatServer) ListUsers(roomName string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rm, exists := s.rooms[roomName]
	if !exists {
		return nil, errRoomNotFound(roomName)
	}
	users := make([]string, 0, len(rm.users))
	return append(users, rm.users...), nil
}

// IsUserInRoom never fails: an unknown room or user is simply false.
func (s *ChatServer) IsUserInRoom(username, roomName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rm, exists := s.rooms[roomName]
	return exists && contains(rm.users, username)
}

func contains(list []string, item string) bool {
	for _, entry := range list {
		if entry == item {
			return true
		}
	}
	return false
}

func remove(list []string, item string) []string {
	for i, entry := range list {
		if entry == item {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
