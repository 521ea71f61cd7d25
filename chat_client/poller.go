package chatclient

import (
	"time"

	"distchat/types"
)

// Poller drives the delivery loop. Every receive_messages call replays
// the complete eligible history (the server keeps no read cursor), so
// the poller de-duplicates by remembering how many messages it has
// already handed to OnMessage.
type Poller struct {
	Client   *Client
	Username string
	Room     string

	// Interval between polls; defaults to one second.
	Interval time.Duration

	OnMessage func(types.Message)
	OnError   func(error)
}

// Run polls until stop is closed. Errors, including room-not-found once
// the reaper deletes the room, go to OnError; polling continues so a
// recreated room picks back up.
func (p *Poller) Run(stop <-chan struct{}) {
	interval := p.Interval
	if interval == 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			messages, err := p.Client.ReceiveMessages(p.Username, p.Room)
			if err != nil {
				if p.OnError != nil {
					p.OnError(err)
				}
				continue
			}
			if len(messages) < seen {
				// Shorter history than last time means the room was
				// deleted and recreated under the same name.
				seen = 0
			}
			for _, msg := range messages[seen:] {
				if p.OnMessage != nil {
					p.OnMessage(msg)
				}
			}
			seen = len(messages)
		}
	}
}
