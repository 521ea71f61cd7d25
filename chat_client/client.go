package chatclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"distchat/types"
)

// CallError is a domain failure reported by the chat server or binder.
// Transport failures (unreachable server, dropped connection) come back
// as ordinary errors instead, so callers can tell the two classes apart.
type CallError struct {
	Message string
}

func (e *CallError) Error() string { return e.Message }

// Client calls the chat server it resolved through the binder. The
// protocol has no pipelining or multiplexing, so the client keeps at
// most one request in flight at a time.
type Client struct {
	binderURL string
	serverURL string
	httpc     *http.Client
	mu        sync.Mutex
}

func New(binderAddr string) *Client {
	return &Client{
		binderURL: "http://" + binderAddr,
		httpc:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Connect resolves the chat_server record through the binder. The binder
// never health-checks what it hands out; a registered-but-dead server
// still resolves, and the failure surfaces on the first call. Call
// Connect again after a connection failure to re-resolve.
func (c *Client) Connect() error {
	var result struct {
		Found bool   `json:"found"`
		Host  string `json:"host"`
		Port  int    `json:"port"`
	}
	if err := c.post(c.binderURL+"/rpc/lookup_procedure", map[string]string{"name": "chat_server"}, &result); err != nil {
		return err
	}
	if !result.Found {
		return &CallError{Message: "chat_server is not registered with the binder"}
	}

	c.mu.Lock()
	c.serverURL = fmt.Sprintf("http://%s:%d", result.Host, result.Port)
	c.mu.Unlock()
	return nil
}

func (c *Client) call(name string, payload, result interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.serverURL == "" {
		return errors.New("not connected: call Connect first")
	}
	return c.post(c.serverURL+"/rpc/"+name, payload, result)
}

func (c *Client) post(url string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &failure) == nil && failure.Error != "" {
			return &CallError{Message: failure.Error}
		}
		return fmt.Errorf("call %s failed with status %d", url, resp.StatusCode)
	}

	if result != nil {
		return json.Unmarshal(raw, result)
	}
	return nil
}

func (c *Client) LoginUser(username, password string) error {
	return c.call("login_user", map[string]string{"username": username, "password": password}, nil)
}

func (c *Client) RegisterUser(username, password string) error {
	return c.call("register_user", map[string]string{"username": username, "password": password}, nil)
}

func (c *Client) CreateRoom(name string) error {
	return c.call("create_room", map[string]string{"name": name}, nil)
}

func (c *Client) JoinRoom(username, room string) (types.RoomSnapshot, error) {
	var snapshot types.RoomSnapshot
	err := c.call("join_room", map[string]string{"username": username, "room": room}, &snapshot)
	return snapshot, err
}

func (c *Client) LeaveRoom(room, username string) error {
	return c.call("leave_room", map[string]string{"room": room, "username": username}, nil)
}

func (c *Client) SendMessage(username, room, body, recipient string) error {
	return c.call("send_message", map[string]string{
		"username":  username,
		"room":      room,
		"message":   body,
		"recipient": recipient,
	}, nil)
}

func (c *Client) ReceiveMessages(username, room string) ([]types.Message, error) {
	var result struct {
		Messages []types.Message `json:"messages"`
	}
	err := c.call("receive_messages", map[string]string{"username": username, "room": room}, &result)
	return result.Messages, err
}

func (c *Client) ListRooms() ([]string, error) {
	var result struct {
		Rooms []string `json:"rooms"`
	}
	err := c.call("list_rooms", map[string]string{}, &result)
	return result.Rooms, err
}

func (c *Client) ListUsers(room string) ([]string, error) {
	var result struct {
		Users []string `json:"users"`
	}
	err := c.call("list_users", map[string]string{"room": room}, &result)
	return result.Users, err
}

func (c *Client) IsUserInRoom(username, room string) (bool, error) {
	var result struct {
		InRoom bool `json:"in_room"`
	}
	err := c.call("is_user_in_room", map[string]string{"username": username, "room": room}, &result)
	return result.InRoom, err
}
