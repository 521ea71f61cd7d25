package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"distchat/db"

	"github.com/gin-gonic/gin"
)

// newTestState wires a ChatServer to a fresh temp-dir SQLite database.
func newTestState(t *testing.T) *ChatServer {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "users.sqlite")
	userDB, err := db.InitSQLite(dbPath)
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}

	prevUserDB := db.UserDB
	db.UserDB = userDB
	t.Cleanup(func() {
		userDB.Close()
		db.UserDB = prevUserDB
	})

	if err := ensureUserSchema(); err != nil {
		t.Fatalf("ensure user schema: %v", err)
	}
	return NewChatServer()
}

func newTestServer(t *testing.T) (*ChatServer, *httptest.Server) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	state := newTestState(t)

	r := gin.New()
	registerRoutes(r, state)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return state, server
}

func rpc(t *testing.T, server *httptest.Server, call string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", call, err)
	}
	resp, err := http.Post(server.URL+"/rpc/"+call, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("call %s: %v", call, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode %s response: %v", call, err)
	}
	return resp.StatusCode, decoded
}

func mustRPC(t *testing.T, server *httptest.Server, call string, payload interface{}) map[string]interface{} {
	t.Helper()

	status, result := rpc(t, server, call, payload)
	if status != 200 {
		t.Fatalf("%s returned %d: %v", call, status, result["error"])
	}
	return result
}

func stringList(t *testing.T, result map[string]interface{}, key string) []string {
	t.Helper()

	raw, ok := result[key].([]interface{})
	if !ok {
		t.Fatalf("expected %q to be a list, got %T", key, result[key])
	}
	list := make([]string, len(raw))
	for i, entry := range raw {
		list[i], ok = entry.(string)
		if !ok {
			t.Fatalf("expected %q entries to be strings, got %T", key, entry)
		}
	}
	return list
}

func messageList(t *testing.T, result map[string]interface{}, key string) []map[string]interface{} {
	t.Helper()

	raw, ok := result[key].([]interface{})
	if !ok {
		t.Fatalf("expected %q to be a list, got %T", key, result[key])
	}
	list := make([]map[string]interface{}, len(raw))
	for i, entry := range raw {
		list[i], ok = entry.(map[string]interface{})
		if !ok {
			t.Fatalf("expected %q entries to be objects, got %T", key, entry)
		}
	}
	return list
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
