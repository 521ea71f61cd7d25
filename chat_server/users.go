package main

import (
	"encoding/json"
	"fmt"

	"distchat/db"
)

// The durable user snapshot: one row per username carrying the password
// and the JSON-encoded list of joined rooms. Rooms themselves are never
// persisted, so a restart keeps every user and wipes every room.
func ensureUserSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			rooms TEXT NOT NULL DEFAULT '[]'
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.UserDB.Exec(stmt); err != nil {
			return fmt.Errorf("schema exec failed: %w", err)
		}
	}
	return nil
}

func loadUsers() (map[string]*userRecord, error) {
	rows, err := db.UserDB.Query(`SELECT username, password, rooms FROM users`)
	if err != nil {
		return nil, fmt.Errorf("user query failed: %w", err)
	}
	defer rows.Close()

	users := make(map[string]*userRecord)
	for rows.Next() {
		var username, password, roomsJSON string
		if err := rows.Scan(&username, &password, &roomsJSON); err != nil {
			return nil, fmt.Errorf("user scan failed: %w", err)
		}
		user := &userRecord{Password: password}
		if err := json.Unmarshal([]byte(roomsJSON), &user.Rooms); err != nil {
			return nil, fmt.Errorf("rooms decode failed for %s: %w", username, err)
		}
		users[username] = user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user row error: %w", err)
	}
	return users, nil
}

func saveUser(username string, user *userRecord) error {
	rooms := user.Rooms
	if rooms == nil {
		rooms = []string{}
	}
	roomsJSON, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("rooms encode failed for %s: %w", username, err)
	}

	_, err = db.UserDB.Exec(
		`INSERT INTO users (username, password, rooms)
		 VALUES (?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
		   password = excluded.password,
		   rooms = excluded.rooms`,
		username,
		user.Password,
		string(roomsJSON),
	)
	if err != nil {
		return fmt.Errorf("user upsert failed for %s: %w", username, err)
	}
	return nil
}

// saveAllUsersLocked rewrites the full snapshot. Caller holds the state
// lock.
func (s *ChatServer) saveAllUsersLocked() error {
	for username, user := range s.users {
		if err := saveUser(username, user); err != nil {
			return err
		}
	}
	return nil
}
