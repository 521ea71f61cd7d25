package types

const (
	KindBroadcast = "broadcast"
	KindUnicast   = "unicast"
)

// Message is one entry in a room's append-only log. Kind is "broadcast"
// or "unicast"; To is set only for unicast. SentAt is the send time
// formatted as hour:minute.
type Message struct {
	Kind   string `json:"type"`
	From   string `json:"from"`
	To     string `json:"to,omitempty"`
	Body   string `json:"message"`
	SentAt string `json:"timestamp"`
}

// RoomSnapshot is the join_room result: the member list at join time and
// the most recent messages, oldest first.
type RoomSnapshot struct {
	Users    []string  `json:"users"`
	Messages []Message `json:"messages"`
}

// ServiceRecord is one binder registry entry.
type ServiceRecord struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port int    `json:"port"`
}
